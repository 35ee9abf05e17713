// Package event holds the wire contracts of messages exchanged between
// modules over the broker.
package event

const (
	// OTPIssuedDestination is the subject OTP issuance events are published to.
	OTPIssuedDestination = "user.otp.issued"

	// OTPIssuedConsumerNotification is the queue group name of the
	// notification module's OTP delivery consumer.
	OTPIssuedConsumerNotification = "notification.user.otp.issued"
)

// OTPIssuedMessage is the payload published when a one-time passcode is
// issued for an email address. The notification module consumes it to
// deliver the code.
type OTPIssuedMessage struct {
	Email            string `json:"email"`
	Code             string `json:"code"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`
}
