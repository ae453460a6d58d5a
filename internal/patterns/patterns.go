// Package patterns cablea todos los demos del catálogo. Es el único lugar
// que conoce la lista completa; los demos no se importan entre sí.
package patterns

import (
	"github.com/dropDatabas3/patrones/internal/catalog"

	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/chain"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/command"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/iterator"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/mediator"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/memento"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/observer"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/state"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/strategy"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/templatemethod"
	"github.com/dropDatabas3/patrones/internal/patterns/behavioral/visitor"
	"github.com/dropDatabas3/patrones/internal/patterns/creational/abstractfactory"
	"github.com/dropDatabas3/patrones/internal/patterns/creational/builder"
	"github.com/dropDatabas3/patrones/internal/patterns/creational/prototype"
	"github.com/dropDatabas3/patrones/internal/patterns/creational/singleton"
	"github.com/dropDatabas3/patrones/internal/patterns/structural/adapter"
	"github.com/dropDatabas3/patrones/internal/patterns/structural/composite"
	"github.com/dropDatabas3/patrones/internal/patterns/structural/decorator"
	"github.com/dropDatabas3/patrones/internal/patterns/structural/facade"
	"github.com/dropDatabas3/patrones/internal/patterns/structural/proxy"
)

// All retorna la lista completa de demos en orden de catálogo.
func All() []catalog.Demo {
	return []catalog.Demo{
		// Creational
		{Key: catalog.Key{Category: catalog.Creational, Name: "abstractfactory"},
			Doc: "familias de productos compatibles detrás de una fábrica", Run: abstractfactory.Run},
		{Key: catalog.Key{Category: catalog.Creational, Name: "builder"},
			Doc: "construcción fluida de un árbol HTML", Run: builder.Run},
		{Key: catalog.Key{Category: catalog.Creational, Name: "prototype"},
			Doc: "clonado de objetos vía registry de prototipos", Run: prototype.Run},
		{Key: catalog.Key{Category: catalog.Creational, Name: "singleton"},
			Doc: "logger singleton thread-safe con emisión ordenada", Run: singleton.Run},

		// Structural
		{Key: catalog.Key{Category: catalog.Structural, Name: "adapter"},
			Doc: "traduce una interfaz incompatible a la del cliente", Run: adapter.Run},
		{Key: catalog.Key{Category: catalog.Structural, Name: "composite"},
			Doc: "árboles de hojas y ramas con interfaz uniforme", Run: composite.Run},
		{Key: catalog.Key{Category: catalog.Structural, Name: "decorator"},
			Doc: "comportamiento adicional envolviendo al componente", Run: decorator.Run},
		{Key: catalog.Key{Category: catalog.Structural, Name: "facade"},
			Doc: "interfaz simple sobre subsistemas complejos", Run: facade.Run},
		{Key: catalog.Key{Category: catalog.Structural, Name: "proxy"},
			Doc: "proxy de caché (go-cache) delante de un servicio caro", Run: proxy.Run},

		// Behavioral
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "chain"},
			Doc: "cadena de responsabilidad con handlers encadenados", Run: chain.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "command"},
			Doc: "pedidos encapsulados con identidad propia", Run: command.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "iterator"},
			Doc: "recorrido de colecciones sin exponer su interior", Run: iterator.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "mediator"},
			Doc: "componentes desacoplados detrás de un mediador", Run: mediator.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "memento"},
			Doc: "undo stack con fotos de estado encapsuladas", Run: memento.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "observer"},
			Doc: "suscripción y notificación de eventos", Run: observer.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "state"},
			Doc: "el contexto delega en el estado vigente", Run: state.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "strategy"},
			Doc: "algoritmo intercambiable en runtime", Run: strategy.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "templatemethod"},
			Doc: "esqueleto fijo con pasos y hooks redefinibles", Run: templatemethod.Run},
		{Key: catalog.Key{Category: catalog.Behavioral, Name: "visitor"},
			Doc: "operaciones nuevas vía double dispatch", Run: visitor.Run},
	}
}

// RegisterAll registra todos los demos en el catálogo dado. No lo sella:
// eso es decisión del caller (el runner sella después de registrar).
func RegisterAll(c *catalog.Catalog) error {
	for _, d := range All() {
		if err := c.Register(d); err != nil {
			return err
		}
	}
	return nil
}
