package services

import (
	"enerbill/internal/app/deps"
	drl "enerbill/internal/core/domain/rate_limiter"
	"enerbill/internal/core/services"
	askassistant "enerbill/internal/core/services/ask_assistant"
	getcontactdetails "enerbill/internal/core/services/get_contact_details"
	login "enerbill/internal/core/services/log_in"
	ratelimiting "enerbill/internal/core/services/rate_limiting"
	registeraccount "enerbill/internal/core/services/register_account"
	resetpassword "enerbill/internal/core/services/reset_password"
	sendresettoken "enerbill/internal/core/services/send_reset_token"
	updatecontactdetails "enerbill/internal/core/services/update_contact_details"
)

type Services struct {
	RegisterAccount      services.Service[registeraccount.Input, registeraccount.Result]
	LogIn                services.Service[login.Input, login.Result]
	SendResetToken       services.Service[sendresettoken.Input, sendresettoken.Result]
	ResetPassword        services.Service[resetpassword.Input, resetpassword.Result]
	GetContactDetails    services.Service[getcontactdetails.Input, getcontactdetails.Result]
	UpdateContactDetails services.Service[updatecontactdetails.Input, updatecontactdetails.Result]
	AskAssistant         services.Service[askassistant.Input, askassistant.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RegisterAccount = registeraccount.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)

	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: 10, Interval: drl.Hour},
		login.New(
			deps.Logger,
			deps.AccountRepository,
			deps.PasswordHasher,
		),
	)

	s.SendResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: 3, Interval: drl.Hour},
		sendresettoken.New(
			deps.Logger,
			deps.AccountRepository,
			deps.ResetTokenGenerator,
			deps.ResetTokenSender,
			deps.Config.ResetTokenValidDuration,
			deps.Now,
		),
	)

	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)

	s.GetContactDetails = getcontactdetails.New(deps.Logger, deps.AccountRepository)
	s.UpdateContactDetails = updatecontactdetails.New(deps.Logger, deps.AccountRepository)

	s.AskAssistant = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: 30, Interval: drl.Hour},
		askassistant.New(deps.Logger, deps.AssistantClient),
	)

	return s
}
