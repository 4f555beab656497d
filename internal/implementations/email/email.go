package email

import (
	"context"
	"encoding/json"

	"enerbill/internal/core/domain/account"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type ResetTokenSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender             string
	resetTokenTemplate string
}

func NewResetTokenSender(
	awsConfig aws.Config,
	sender string,
	resetTokenTemplate string,
) *ResetTokenSender {
	return &ResetTokenSender{
		ses:                ses.NewFromConfig(awsConfig),
		sender:             sender,
		resetTokenTemplate: resetTokenTemplate,
	}
}

func (s *ResetTokenSender) SendResetToken(
	ctx context.Context,
	a account.Account,
	token account.ResetToken,
) error {
	templateParamsBytes, err := json.Marshal(
		resetTokenTemplateParams{
			FirstName:  a.FirstName,
			ResetToken: string(token),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(a.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.resetTokenTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type resetTokenTemplateParams struct {
	FirstName  string `json:"firstName"`
	ResetToken string `json:"resetToken"`
}
