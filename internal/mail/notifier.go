package mail

// Notifier is the outbound mail surface the account and reservation flows
// trigger. Delivery is best-effort; callers must never treat a send failure
// as an operation failure.
type Notifier interface {
	SendDoctorWelcome(email, firstName, lastName, password string) error
	SendPatientWelcome(email, firstName, lastName, token string) error
	SendPasswordReset(email, firstName, lastName, token string) error
	SendPasswordResetSuccess(email, firstName, lastName string) error
}
