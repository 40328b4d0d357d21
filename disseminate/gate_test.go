package disseminate

import (
	"testing"

	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/metadata"
)

func gateItem() *metadata.Item {
	return &metadata.Item{
		Handle:           "123456789/42",
		OwningCollection: metadata.Container{Handle: "123456789/7"},
		Communities: []metadata.Container{
			{Handle: "123456789/2"},
		},
	}
}

func pdfBitstream() Bitstream {
	return Bitstream{Name: "paper.pdf", MimeType: "application/pdf"}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name        string
		global      bool
		collections []string
		communities []string
		mime        string
		admin       bool
		want        bool
	}{
		{"globally enabled", true, nil, nil, "application/pdf", false, true},
		{"globally enabled x-pdf", true, nil, nil, "application/x-pdf", false, true},
		{"admin never intercepted", true, nil, nil, "application/pdf", true, false},
		{"non-pdf never intercepted", true, nil, nil, "image/tiff", false, false},
		{"nothing enabled", false, nil, nil, "application/pdf", false, false},
		{"owning collection listed", false, []string{"123456789/7"}, nil, "application/pdf", false, true},
		{"other collection listed", false, []string{"123456789/99"}, nil, "application/pdf", false, false},
		{"community listed", false, nil, []string{"123456789/2"}, "application/pdf", false, true},
		{"other community listed", false, nil, []string{"123456789/99"}, "application/pdf", false, false},
		{"collection listed but admin", false, []string{"123456789/7"}, nil, "application/pdf", true, false},
		{"collection listed but not pdf", false, []string{"123456789/7"}, nil, "text/plain", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.EnableGlobally = tt.global
			cfg.EnabledCollections = tt.collections
			cfg.EnabledCommunities = tt.communities

			bs := pdfBitstream()
			bs.MimeType = tt.mime

			if got := Eligible(cfg, gateItem(), bs, tt.admin); got != tt.want {
				t.Fatalf("Eligible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"application/pdf", true},
		{"application/x-pdf", true},
		{"Application/PDF", true},
		{"application/pdf; charset=binary", true},
		{"application/msword", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPDF(tt.mime); got != tt.want {
			t.Fatalf("IsPDF(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}
