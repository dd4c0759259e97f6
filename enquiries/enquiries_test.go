package enquiries

import (
	"testing"

	"emporia/models"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		models.EnquirySubmitted,
		models.EnquiryContacted,
		models.EnquiryInProgress,
		models.EnquiryResolved,
	} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) should be true", s)
		}
	}
	if ValidStatus("Escalated") {
		t.Error("unknown status should be rejected")
	}
	if ValidStatus("") {
		t.Error("empty status should be rejected")
	}
}
