package event

const AccountVerifiedDestination string = "identity_account_verified"
const AccountVerifiedDestinationConsumerNotification string = "identity_account_verified_notification"

type AccountVerifiedMessage struct {
	EventID   string `json:"event_id"`
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
}
