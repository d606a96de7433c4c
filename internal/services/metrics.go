package services

import "github.com/prometheus/client_golang/prometheus"

// Domain counters, exposed on /metrics next to the HTTP collectors.
var (
	recipesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipes_created_total",
		Help: "Number of recipes created.",
	})
	recipesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipes_deleted_total",
		Help: "Number of recipes deleted (existing rows only).",
	})
	ingredientsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ingredients_created_total",
		Help: "Number of ingredients created, including those created with a recipe.",
	})
	ingredientsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ingredients_deleted_total",
		Help: "Number of ingredients deleted individually.",
	})
)

func init() {
	prometheus.MustRegister(recipesCreated, recipesDeleted, ingredientsCreated, ingredientsDeleted)
}
