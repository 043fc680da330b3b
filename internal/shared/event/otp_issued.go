package event

const OTPIssuedDestination string = "identity_otp_issued"
const OTPIssuedDestinationConsumerNotification string = "identity_otp_issued_notification"

// OTP purposes carried in OTPIssuedMessage.
const (
	OTPPurposeSignup string = "signup"
	OTPPurposeLogin  string = "login"
)

type OTPIssuedMessage struct {
	EventID          string `json:"event_id"`
	AccountID        int64  `json:"account_id"`
	Email            string `json:"email"`
	OTP              string `json:"otp"`
	Purpose          string `json:"purpose"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}
