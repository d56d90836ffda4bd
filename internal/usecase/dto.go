package usecase

type CaptureLeadInput struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type CaptureLeadOutput struct {
	Success bool   `json:"success"`
	LeadID  string `json:"-"`
}

type SubmitReviewInput struct {
	ProductSlug string  `json:"productSlug"`
	AuthorName  string  `json:"authorName"`
	Rating      float64 `json:"rating"`
	ReviewText  string  `json:"reviewText"`
}

type TrackVisitInput struct {
	SessionID string
	Path      string
	UserAgent string
}

// TrackVisitOutput always carries a location tuple, real or fallback.
type TrackVisitOutput struct {
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
}
