package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/catalog"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.CatalogUseCase
	LedgerUC    *rental.LedgerUseCase
	StatementUC *rental.StatementUseCase
	JWTSecret   string
	OperatorID  string
	Logger      *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token: el principal sale del JWT.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger.Component("http")
	v := NewValidator()

	api := app.Group("/api", RequestLogger(log), AuthMiddleware(deps.JWTSecret))

	// Users (el principal autenticado)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.LedgerUC, deps.StatementUC, v, log)
	users.Post("/", userHandler.Register)
	users.Get("/me", userHandler.Me)
	users.Post("/me/deposits", userHandler.Deposit)
	users.Post("/me/withdrawals", userHandler.Withdraw)
	users.Post("/me/payments", userHandler.Pay)
	users.Get("/me/entries", userHandler.Entries)
	users.Get("/me/statement", userHandler.Statement)

	// Cars (escrituras solo operador)
	cars := api.Group("/cars")
	carHandler := NewCarHandler(deps.CatalogUC, v, log)
	cars.Get("/", carHandler.List)
	cars.Get("/count", carHandler.Count)
	cars.Get("/:id", carHandler.GetByID)
	cars.Post("/", carHandler.Create)
	cars.Put("/:id", carHandler.Update)
	cars.Patch("/:id/status", carHandler.EditStatus)

	// Rentals
	rentals := api.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.LedgerUC, log)
	rentals.Post("/checkout/:carId", rentalHandler.CheckOut)
	rentals.Post("/checkin", rentalHandler.CheckIn)
	rentals.Get("/quote", rentalHandler.Quote)

	// Owner (operador)
	owner := api.Group("/owner", RequireOperator(deps.OperatorID))
	ownerHandler := NewOwnerHandler(deps.LedgerUC, v, log)
	owner.Get("/balance", ownerHandler.Balance)
	owner.Post("/withdrawals", ownerHandler.Withdraw)
}
