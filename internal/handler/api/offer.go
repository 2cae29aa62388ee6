package api

import (
	"net/http"

	reqdto "offer-engine/internal/handler/dto/request"
	resdto "offer-engine/internal/handler/dto/response"
	"offer-engine/internal/handler/httperr"
	"offer-engine/internal/pkg/errs"
	"offer-engine/internal/usecase/commands"
	"offer-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Ingest offers
// @Description Normalize and store offers from the upstream offer feed; duplicates are skipped
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.IngestOffersRequest true "Upstream offer payload"
// @Success 201 {object} resdto.IngestOffersResponse
// @Success 200 {object} resdto.IngestOffersResponse "No offers identified"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /offer [post]
func (h *OfferHandler) Ingest(c *gin.Context) {
	var req reqdto.IngestOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "flipkartOfferApiResponse is required", nil)
		return
	}

	entries := req.Entries()
	if len(entries) == 0 {
		c.JSON(http.StatusOK, resdto.FromIngestResult(&commands.IngestResult{}))
		return
	}

	result, err := h.cmds.IngestOffers(c.Request.Context(), reqdto.ToRawOffers(entries))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	if result.Identified == 0 {
		c.JSON(http.StatusOK, resdto.FromIngestResult(result))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIngestResult(result))
}

// @Summary Highest applicable discount
// @Description Compute the best discount for a transaction amount, bank and payment instrument
// @Tags offers
// @Produce json
// @Param amountToPay query number true "Transaction amount"
// @Param bankName query string true "Bank name"
// @Param paymentInstrument query string true "Payment instrument"
// @Success 200 {object} resdto.HighestDiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /highest-discount [get]
func (h *OfferHandler) HighestDiscount(c *gin.Context) {
	amountStr := c.Query("amountToPay")
	bankName := c.Query("bankName")
	paymentInstrument := c.Query("paymentInstrument")
	if amountStr == "" || bankName == "" || paymentInstrument == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing query parameter"),
			"amountToPay, bankName and paymentInstrument are required", nil)
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "amountToPay must be a valid number", nil)
		return
	}

	d, err := h.q.HighestDiscount(c.Request.Context(), amount, bankName, paymentInstrument)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHighestDiscount(d))
}
