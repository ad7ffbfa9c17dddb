package resources

import "testing"

func TestIconsAreEmbedded(t *testing.T) {
	for _, name := range []string{"sparkles.svg", "instagram.svg", "mail.svg"} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(resource.Content()) == 0 {
			t.Errorf("%s: empty resource", name)
		}
		again := MustIcon(name)
		if again != resource {
			t.Errorf("%s: expected cached resource", name)
		}
	}
}

func TestMissingIcon(t *testing.T) {
	if _, err := Icon("missing.svg"); err == nil {
		t.Fatal("expected an error for a missing icon")
	}
}
