package bot

import (
	"testing"
	"time"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
)

func TestParseDateArg(t *testing.T) {
	tests := []struct {
		arg     string
		want    time.Time
		wantErr bool
	}{
		{arg: "2026-09-20", want: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{arg: "20/09/2026", want: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{arg: "amanha", wantErr: true},
		{arg: "2026-13-40", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseDateArg(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDateArg(%q) expected an error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDateArg(%q) returned %v", tt.arg, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDateArg(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestChatAllowed(t *testing.T) {
	open := &Listener{cfg: config.TelegramConfig{}}
	if !open.chatAllowed(123) {
		t.Error("empty allow list must accept any chat")
	}

	restricted := &Listener{cfg: config.TelegramConfig{AllowedChatIDs: []int64{10, 20}}}
	if !restricted.chatAllowed(20) {
		t.Error("listed chat must be allowed")
	}
	if restricted.chatAllowed(30) {
		t.Error("unlisted chat must be rejected")
	}
}
