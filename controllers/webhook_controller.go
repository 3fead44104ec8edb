package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/services"
)

// SignatureHeader carries the identity provider's HMAC-SHA256 signature of
// the raw webhook body, hex encoded.
const SignatureHeader = "X-Webhook-Signature"

type WebhookController struct {
	userService *services.UserService
	secret      []byte
}

func NewWebhookController(userService *services.UserService, secret []byte) *WebhookController {
	return &WebhookController{
		userService: userService,
		secret:      secret,
	}
}

// HandleIdentityWebhook verifies the signature and syncs the local user
// record from the provider's lifecycle event.
func (wc *WebhookController) HandleIdentityWebhook(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read body"})
		return
	}

	if !wc.verifySignature(body, ctx.GetHeader(SignatureHeader)) {
		logger.Warn(ctx, "Webhook signature verification failed")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	var evt services.IdentityEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	if appErr := wc.userService.HandleIdentityEvent(ctx.Request.Context(), &evt); appErr != nil {
		respondError(ctx, appErr)
		return
	}

	logger.Info(ctx, "Processed identity webhook", zap.String("event_type", evt.Type))
	ctx.JSON(http.StatusOK, gin.H{"message": "Webhook received"})
}

func (wc *WebhookController) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, wc.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
