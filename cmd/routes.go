package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Auth
	mux.Post("/api/auth/register", standardMiddleware.ThenFunc(app.authHandler.Register))
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))
	mux.Get("/api/auth/me", authMiddleware.ThenFunc(app.authHandler.Me))

	// Users
	mux.Get("/api/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Rentals
	mux.Get("/api/rentals", authMiddleware.ThenFunc(app.rentalHandler.GetRentals))
	mux.Get("/api/rentals/:id", authMiddleware.ThenFunc(app.rentalHandler.GetRentalByID))
	mux.Post("/api/rentals", authMiddleware.ThenFunc(app.rentalHandler.CreateRental))
	mux.Put("/api/rentals/:id", authMiddleware.ThenFunc(app.rentalHandler.UpdateRental))

	// Messages
	mux.Post("/api/messages", authMiddleware.ThenFunc(app.messageHandler.CreateMessage))

	// Live message feed for listing owners
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	// Device tokens, only when push is configured
	if app.notifyTokenHandler != nil {
		mux.Post("/api/notify_tokens", authMiddleware.ThenFunc(app.notifyTokenHandler.CreateToken))
		mux.Del("/api/notify_tokens/:token", authMiddleware.ThenFunc(app.notifyTokenHandler.DeleteToken))
	}

	// Uploaded pictures
	mux.Get("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.cfg.Uploads.Dir))))

	return mux
}
