package routes

import (
	"atelie_arq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathClients   = "/clients"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, paymentHandler *handlers.EntradaPaymentHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.GenerateProposal)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.POST("/:id/entrada-payment", paymentHandler.CreateEntradaPayment)
		proposals.GET("/:id/entrada-payment", paymentHandler.GetEntradaPayment)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/:cliente_id/proposals", proposalHandler.ListProposalsByCliente)
	}
}
