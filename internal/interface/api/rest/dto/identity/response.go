package identity

type (
	Identity struct {
		ID           string  `json:"id"`
		PrimaryEmail *string `json:"primary_email"`
		CreatedAt    string  `json:"created_at"`
		UpdatedAt    string  `json:"updated_at"`
		Deleted      bool    `json:"deleted"`
		DeletedAt    string  `json:"deleted_at"`
		Version      int     `json:"version"`
	}
	Identities   []Identity
	ResponseData struct {
		Data   Identities `json:"data"`
		Limit  int        `json:"limit"`
		Offset int        `json:"offset"`
	}
)
