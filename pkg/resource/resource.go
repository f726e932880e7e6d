// Package resource turns models into the JSON shapes the API returns.
//
//	func Product(p models.Product) resource.Map {
//	    return resource.Map{
//	        "id":       p.ID,
//	        "name":     p.Name,
//	        "category": resource.Item(Category, p.Category),
//	    }
//	}
//
//	c.Success(resource.Collection(Product, products))
package resource

// Map is the output of a transformer.
type Map = map[string]interface{}

// Transformer converts one model into a Map.
type Transformer[T any] func(T) Map

// Item applies t to v.
func Item[T any](t Transformer[T], v T) Map {
	return t(v)
}

// Optional applies t to *v, or returns nil when v is nil.
func Optional[T any](t Transformer[T], v *T) Map {
	if v == nil {
		return nil
	}
	return t(*v)
}

// Collection applies t to every item. The result is never nil, so an empty
// input encodes as [] rather than null.
func Collection[T any](t Transformer[T], items []T) []Map {
	out := make([]Map, 0, len(items))
	for _, it := range items {
		out = append(out, t(it))
	}
	return out
}
