// Package proxy: un proxy de caché delante de un servicio "caro".
//
// Versión real-world del patrón: el proxy implementa la misma interfaz que
// el servicio y decide cuándo delegarle la llamada. La caché es go-cache con
// TTL, el mismo building block que usamos para caches en memoria en otros
// servicios.
package proxy

import (
	"context"
	"fmt"
	"io"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service es la interfaz compartida por el servicio real y el proxy.
type Service interface {
	Fetch(key string) (string, error)
}

// realService simula un backend costoso; cuenta cuántas veces lo golpean.
type realService struct {
	hits int
}

func (s *realService) Fetch(key string) (string, error) {
	s.hits++
	return fmt.Sprintf("payload(%s) computed by the real service (hit #%d)", key, s.hits), nil
}

// CachingProxy sirve desde caché y sólo delega en el servicio real ante un
// miss. Expone la misma interfaz, así el cliente no distingue a quién llama.
type CachingProxy struct {
	real  Service
	cache *gocache.Cache
	out   io.Writer
}

// NewCachingProxy arma un proxy con TTL por entrada.
func NewCachingProxy(real Service, ttl time.Duration, out io.Writer) *CachingProxy {
	return &CachingProxy{
		real:  real,
		cache: gocache.New(ttl, 10*time.Minute),
		out:   out,
	}
}

func (p *CachingProxy) Fetch(key string) (string, error) {
	if v, ok := p.cache.Get(key); ok {
		fmt.Fprintf(p.out, "Proxy: cache hit for %q\n", key)
		return v.(string), nil
	}
	fmt.Fprintf(p.out, "Proxy: cache miss for %q, asking the real service\n", key)
	v, err := p.real.Fetch(key)
	if err != nil {
		return "", err
	}
	p.cache.Set(key, v, gocache.DefaultExpiration)
	return v, nil
}

// Run ejecuta el demo.
func Run(_ context.Context, w io.Writer) error {
	svc := &realService{}
	proxy := NewCachingProxy(svc, 5*time.Minute, w)

	for _, key := range []string{"user:42", "user:42", "user:7", "user:42"} {
		v, err := proxy.Fetch(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Client got:", v)
	}
	fmt.Fprintf(w, "Real service was hit %d times for 4 client calls\n", svc.hits)
	return nil
}
