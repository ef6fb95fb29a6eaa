package dto

// UpdateFCMTokenRequest jeton de notification push de l'appareil
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}
