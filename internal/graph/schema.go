package graph

import (
	"context"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

// PointReader is the slice of the query service the resolvers need. Kept
// narrow so tests can supply a stub without a database.
type PointReader interface {
	List(ctx context.Context, limit, offset int) ([]wifi.WifiPoint, error)
	ByIdentifier(ctx context.Context, fragment string) ([]wifi.WifiPoint, error)
	ByNeighborhood(ctx context.Context, fragment string, limit, offset int) ([]wifi.WifiPoint, error)
	ByBoroughs(ctx context.Context, boroughs []string) ([]wifi.WifiPoint, error)
	Nearest(ctx context.Context, lat, lon float64, limit int) ([]wifi.WifiPoint, error)
	Stats(ctx context.Context) (*wifi.Stats, error)
}

var wifiPointType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WifiPoint",
	Fields: graphql.Fields{
		"surrogateId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(wifi.WifiPoint).UUID.String(), nil
			},
		},
		"identifier": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(wifi.WifiPoint).SourceID, nil
			},
		},
		"program": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(wifi.WifiPoint).Program, nil
			},
		},
		"installDate": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return optString(p.Source.(wifi.WifiPoint).InstallDate), nil
			},
		},
		"latitude": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return optFloat(p.Source.(wifi.WifiPoint).Latitude), nil
			},
		},
		"longitude": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return optFloat(p.Source.(wifi.WifiPoint).Longitude), nil
			},
		},
		"neighborhood": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return optString(p.Source.(wifi.WifiPoint).Neighborhood), nil
			},
		},
		"borough": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return optString(p.Source.(wifi.WifiPoint).Borough), nil
			},
		},
	},
})

var boroughCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BoroughCount",
	Fields: graphql.Fields{
		"borough": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(wifi.BoroughCount).Borough, nil
			},
		},
		"points": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(wifi.BoroughCount).Points), nil
			},
		},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CatalogueStats",
	Fields: graphql.Fields{
		"totalPoints": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(*wifi.Stats).TotalPoints), nil
			},
		},
		"withCoordinates": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(*wifi.Stats).WithCoordinates), nil
			},
		},
		"byBorough": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(boroughCountType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*wifi.Stats).ByBorough, nil
			},
		},
	},
})

// NewSchema builds the query schema over svc. Every field maps 1:1 onto a
// service call; resolvers do no work of their own beyond argument plumbing.
func NewSchema(svc PointReader) (graphql.Schema, error) {
	pointList := graphql.NewList(graphql.NewNonNull(wifiPointType))

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"listPoints": &graphql.Field{
				Type: pointList,
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.List(p.Context, p.Args["limit"].(int), p.Args["offset"].(int))
				},
			},
			"pointsByIdentifier": &graphql.Field{
				Type: pointList,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ByIdentifier(p.Context, p.Args["id"].(string))
				},
			},
			"pointsByNeighborhood": &graphql.Field{
				Type: pointList,
				Args: graphql.FieldConfigArgument{
					"neighborhood": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit":        &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset":       &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ByNeighborhood(p.Context,
						p.Args["neighborhood"].(string), p.Args["limit"].(int), p.Args["offset"].(int))
				},
			},
			"pointsByBoroughs": &graphql.Field{
				Type: pointList,
				Args: graphql.FieldConfigArgument{
					"boroughs": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw := p.Args["boroughs"].([]interface{})
					boroughs := make([]string, 0, len(raw))
					for _, b := range raw {
						boroughs = append(boroughs, b.(string))
					}
					return svc.ByBoroughs(p.Context, boroughs)
				},
			},
			"nearestPoints": &graphql.Field{
				Type: pointList,
				Args: graphql.FieldConfigArgument{
					"lat":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Nearest(p.Context,
						p.Args["lat"].(float64), p.Args["lon"].(float64), p.Args["limit"].(int))
				},
			},
			"catalogueStats": &graphql.Field{
				Type: statsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Stats(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

// NewHandler mounts the schema behind an HTTP handler with the GraphiQL
// console enabled, matching the original deployment's query console.
func NewHandler(svc PointReader) (http.Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}

func optString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func optFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
