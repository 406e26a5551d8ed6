package http

import (
	"github.com/quant-backend/internal/infrastructure/dynamo"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/quant-backend/internal/infrastructure/sendgrid"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	MemberRepo       *dynamo.MemberRepo
	VerificationRepo *dynamo.VerificationRepo
	InstallRepo      *dynamo.InstallRepo
	Fourthwall       *fourthwall.Client
	Mailer           sendgrid.Mailer
}
