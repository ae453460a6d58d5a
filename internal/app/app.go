// Package app arma el runner: catálogo sellado + logger singleton + sinks.
// Los comandos del CLI son wrappers finos sobre este paquete.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/patrones/internal/catalog"
	"github.com/dropDatabas3/patrones/internal/config"
	"github.com/dropDatabas3/patrones/internal/metrics"
	"github.com/dropDatabas3/patrones/internal/observability/logger"
	"github.com/dropDatabas3/patrones/internal/patterns"
	"github.com/dropDatabas3/patrones/internal/sink"
)

// App expone las operaciones del runner sobre un catálogo ya sellado.
type App struct {
	cfg *config.Config
	cat *catalog.Catalog
	out io.Writer // salida de los demos (no la del logger)
}

// New construye la app: registra todos los demos, sella el catálogo e
// inicializa el logger singleton según config. out es la salida de los
// demos; si es nil, os.Stdout.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	if out == nil {
		out = os.Stdout
	}

	cat := catalog.New()
	if err := patterns.RegisterAll(cat); err != nil {
		return nil, fmt.Errorf("app: registering demos: %w", err)
	}
	cat.Seal()

	logSink, err := buildLogSink(cfg)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{Level: cfg.Level(), Out: logSink})
	// Init es idempotente: si otro ya inicializó (tests), el umbral pedido
	// se aplica igual sobre la instancia viva.
	logger.SetLevel(cfg.Level())

	if cfg.Log.Metrics {
		if err := metrics.RegisterLog(nil); err != nil {
			return nil, fmt.Errorf("app: registering metrics: %w", err)
		}
	}

	return &App{cfg: cfg, cat: cat, out: out}, nil
}

// buildLogSink arma el sink del logger: stdout, más tee a archivo si está
// configurado.
func buildLogSink(cfg *config.Config) (io.Writer, error) {
	stdout := sink.Writer("stdout", os.Stdout)
	if cfg.Log.File == "" {
		return stdout, nil
	}
	file, err := sink.File(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	return sink.NewGroup("log", stdout, file), nil
}

// Catalog expone el catálogo sellado (solo lectura útil: Lookup/Entries).
func (a *App) Catalog() *catalog.Catalog { return a.cat }

// List retorna los demos, opcionalmente filtrados por categoría.
func (a *App) List(category string) []catalog.Demo {
	all := a.cat.Entries()
	if category == "" {
		return all
	}
	out := make([]catalog.Demo, 0, len(all))
	for _, d := range all {
		if d.Key.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// resolve acepta "category/name" o un nombre pelado no ambiguo.
func (a *App) resolve(ref string) (catalog.Demo, error) {
	k, err := catalog.ParseKey(ref)
	if err != nil {
		return catalog.Demo{}, err
	}
	if k.Category != "" {
		d, ok := a.cat.Lookup(k)
		if !ok {
			return catalog.Demo{}, fmt.Errorf("%w: %s", catalog.ErrUnknown, k)
		}
		return d, nil
	}
	d, ok := a.cat.LookupName(k.Name)
	if !ok {
		return catalog.Demo{}, fmt.Errorf("%w (o ambiguo): %s", catalog.ErrUnknown, k.Name)
	}
	return d, nil
}

// RunOne ejecuta un demo por referencia, con el header del catálogo.
func (a *App) RunOne(ctx context.Context, ref string) error {
	d, err := a.resolve(ref)
	if err != nil {
		return err
	}
	return a.runDemo(ctx, d, a.out)
}

// runDemo ejecuta un demo contra el writer dado, loguea el resultado en el
// singleton y alimenta las métricas.
func (a *App) runDemo(ctx context.Context, d catalog.Demo, w io.Writer) error {
	log := logger.From(ctx)
	log.Debugf("running demo %s", d.Key)

	fmt.Fprintf(w, "//// %s ////\n", d.Key)
	if err := d.Run(ctx, w); err != nil {
		metrics.DemoRuns.WithLabelValues("error").Inc()
		log.Errorf("demo %s failed: %v", d.Key, err)
		return fmt.Errorf("app: demo %s: %w", d.Key, err)
	}
	metrics.DemoRuns.WithLabelValues("ok").Inc()
	return nil
}

// RunMany ejecuta varios demos. Con parallel > 1 corre en paralelo acotado
// (errgroup) pero cada demo escribe en su propio buffer: la salida se vuelca
// en el orden pedido, nunca intercalada.
func (a *App) RunMany(ctx context.Context, refs []string) error {
	demos := make([]catalog.Demo, len(refs))
	for i, ref := range refs {
		d, err := a.resolve(ref)
		if err != nil {
			return err
		}
		demos[i] = d
	}

	parallel := a.cfg.Run.Parallel
	if parallel <= 1 || len(demos) == 1 {
		for _, d := range demos {
			if err := a.runDemo(ctx, d, a.out); err != nil {
				return err
			}
		}
		return nil
	}

	buffers := make([]bytes.Buffer, len(demos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, d := range demos {
		i, d := i, d
		g.Go(func() error {
			return a.runDemo(gctx, d, &buffers[i])
		})
	}
	err := g.Wait()

	// Volcado en orden pedido; los demos que alcanzaron a correr se
	// muestran aunque otro haya fallado.
	for i := range buffers {
		io.Copy(a.out, &buffers[i])
	}
	return err
}

// RunAll ejecuta el catálogo completo en orden determinístico.
func (a *App) RunAll(ctx context.Context) error {
	entries := a.cat.Entries()
	refs := make([]string, len(entries))
	for i, d := range entries {
		refs[i] = d.Key.String()
	}
	return a.RunMany(ctx, refs)
}
