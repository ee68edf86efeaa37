package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// transactionIDParam is the path parameter holding the transaction id.
const transactionIDParam = "transaction_id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withCORS(),
		middleware.Timeout(h.requestTimeout),
	)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/", h.root)
	router.Get("/health", h.health)

	// mounted subrouter answers both /transactions and /transactions/
	router.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.createTransaction)
		r.Get("/", h.listTransactions)
		r.Get("/{"+transactionIDParam+"}", h.getTransaction)
		r.Delete("/{"+transactionIDParam+"}", h.deleteTransaction)
	})

	return router
}
