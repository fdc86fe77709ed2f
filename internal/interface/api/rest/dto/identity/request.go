package identity

type Request struct {
	PrimaryEmail *string `json:"primary_email"`
}
