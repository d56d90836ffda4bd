package mail

type VerificationEmailData struct {
	FirstName       string
	VerificationURL string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
