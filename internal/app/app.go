package app

import (
	"fmt"
	"net/http"

	"enerbill/internal/app/deps"
	"enerbill/internal/app/services"
	getcontactdetails "enerbill/internal/http/handlers/account/get_contact_details"
	updatecontactdetails "enerbill/internal/http/handlers/account/update_contact_details"
	"enerbill/internal/http/handlers/assistant/ask"
	login "enerbill/internal/http/handlers/auth/log_in"
	"enerbill/internal/http/handlers/auth/register"
	resetpassword "enerbill/internal/http/handlers/auth/reset_password"
	sendresettoken "enerbill/internal/http/handlers/auth/send_reset_token"
	"enerbill/internal/http/handlers/health"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/register", register.New(s.RegisterAccount))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendresettoken.New(s.SendResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	accountRouter := chi.NewRouter()
	accountRouter.Method(http.MethodPost, "/details", getcontactdetails.New(s.GetContactDetails))
	accountRouter.Method(http.MethodPatch, "/details", updatecontactdetails.New(s.UpdateContactDetails))

	assistantRouter := chi.NewRouter()
	assistantRouter.Method(http.MethodPost, "/chat", ask.New(s.AskAssistant))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/account", accountRouter)
	router.Mount("/assistant", assistantRouter)
	router.Method(http.MethodGet, "/health", health.New(deps.Now))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
