package template

import (
	"fmt"
	"testing"
	"time"
)

func TestNewScaffoldContext(t *testing.T) {
	t.Parallel()

	t.Run("explicit values pass through", func(t *testing.T) {
		sctx := NewScaffoldContext("Bit Recovery", "Dirk Roorda", "2014, Dirk Roorda", "1.2", "1.2.1")
		if sctx.Copyright != "2014, Dirk Roorda" {
			t.Errorf("Copyright: got %q", sctx.Copyright)
		}
		if sctx.Release != "1.2.1" {
			t.Errorf("Release: got %q", sctx.Release)
		}
	})

	t.Run("copyright derived from author", func(t *testing.T) {
		sctx := NewScaffoldContext("Bit Recovery", "Dirk Roorda", "", "1.2", "1.2.1")
		want := fmt.Sprintf("%d, Dirk Roorda", time.Now().Year())
		if sctx.Copyright != want {
			t.Errorf("Copyright: got %q, want %q", sctx.Copyright, want)
		}
	})

	t.Run("copyright stays empty without author", func(t *testing.T) {
		sctx := NewScaffoldContext("Bit Recovery", "", "", "1.2", "")
		if sctx.Copyright != "" {
			t.Errorf("Copyright: got %q, want empty", sctx.Copyright)
		}
	})

	t.Run("release mirrors version", func(t *testing.T) {
		sctx := NewScaffoldContext("Bit Recovery", "Dirk Roorda", "", "1.2", "")
		if sctx.Release != "1.2" {
			t.Errorf("Release: got %q, want %q", sctx.Release, "1.2")
		}
	})
}
