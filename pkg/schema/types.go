package schema

// UserRecord is the decoded form of the User schema.
type UserRecord struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Page is the decoded form of the Pagination schema.
// Page defaults to 1 and PerPage to 15.
type Page struct {
	Page     int `json:"page"`
	PerPage  int `json:"perPage"`
	Total    int `json:"total"`
	LastPage int `json:"lastPage"`
}

// Settings is the decoded form of the Config schema.
// Timeout (milliseconds) defaults to 30000, Retries to 3 and Debug to false.
type Settings struct {
	APIURL  string `json:"apiUrl"`
	Timeout int    `json:"timeout"`
	Retries int    `json:"retries"`
	Debug   bool   `json:"debug"`
}

// Envelope is the decoded form of an APIResponse schema.
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// PageOf is the decoded form of a PaginatedResponse schema.
type PageOf[T any] struct {
	Data       []T  `json:"data"`
	Pagination Page `json:"pagination"`
}
