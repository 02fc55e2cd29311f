package apiclient

import "fmt"

// Sentiment labels returned by the collaborator. Anything else is rendered
// through the unrecognized fallback (LabelClass returns "neutral").
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiment is the sentiment classification attached to an analysis.
type Sentiment struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation,omitempty"`
}

// ConfidencePercent formats the confidence as a percentage with one
// decimal, e.g. "87.5%".
func (s Sentiment) ConfidencePercent() string {
	return fmt.Sprintf("%.1f%%", s.Confidence*100)
}

// LabelClass returns the label if it is one of the known sentiment labels,
// and the neutral fallback otherwise. Views use it to pick a badge style
// without trusting the collaborator's vocabulary.
func (s Sentiment) LabelClass() string {
	switch s.Label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return s.Label
	}
	return SentimentNeutral
}

// Analysis is one structured result produced by the collaborator for a
// piece of submitted text. Immutable once created server-side.
type Analysis struct {
	ID           string    `json:"id"`
	OriginalText string    `json:"original_text"`
	Summary      string    `json:"summary"`
	Keywords     []string  `json:"keywords"`
	Sentiment    Sentiment `json:"sentiment"`
	CreatedAt    string    `json:"created_at"`
}

// HistoryPage is the paginated history envelope returned by the
// collaborator; callers normally only consume Items.
type HistoryPage struct {
	Items      []Analysis `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

// User is the authenticated account as reported by the collaborator.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name,omitempty"`
	EmailConfirmedAt string `json:"email_confirmed_at"`
	CreatedAt        string `json:"created_at"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Health is the collaborator status snapshot shown on the home view.
type Health struct {
	Status             string `json:"status"`
	SupabaseConfigured bool   `json:"supabase_configured"`
	GeminiConfigured   bool   `json:"gemini_configured"`
	Environment        string `json:"environment"`
}

// degradedHealth is what HealthCheck reports when the collaborator cannot
// be reached; the health view must never fail.
func degradedHealth() Health {
	return Health{
		Status:             "error",
		SupabaseConfigured: false,
		GeminiConfigured:   false,
		Environment:        "unknown",
	}
}

// analyzeRequest is the body posted to the analyze endpoint.
type analyzeRequest struct {
	Text string `json:"text"`
}

// loginRequest is the body posted to the login endpoint.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the body posted to the register endpoint.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// resendRequest is the body posted to the resend-confirmation endpoint.
type resendRequest struct {
	Email string `json:"email"`
}
