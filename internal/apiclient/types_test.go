package apiclient

import "testing"

func TestConfidencePercent(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.875, "87.5%"},
		{1, "100.0%"},
		{0, "0.0%"},
		{0.333, "33.3%"},
	}
	for _, tt := range tests {
		s := Sentiment{Confidence: tt.confidence}
		if got := s.ConfidencePercent(); got != tt.want {
			t.Errorf("ConfidencePercent(%v) = %q; want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestLabelClass_Fallback(t *testing.T) {
	for _, known := range []string{SentimentPositive, SentimentNegative, SentimentNeutral} {
		if got := (Sentiment{Label: known}).LabelClass(); got != known {
			t.Errorf("LabelClass(%q) = %q", known, got)
		}
	}
	if got := (Sentiment{Label: "ecstatic"}).LabelClass(); got != SentimentNeutral {
		t.Errorf("expected unrecognized label to fall back to neutral, got %q", got)
	}
}
