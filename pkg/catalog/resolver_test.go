package catalog

import "testing"

func TestMatchPartialTag(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		partial string
		want    string
		wantOK  bool
	}{
		{"first match wins", []string{"ban-user", "unban-user"}, "ban", "ban-user", true},
		{"substring not prefix", []string{"ban-user", "unban-user"}, "unban", "unban-user", true},
		{"order dependent", []string{"unban-user", "ban-user"}, "ban", "unban-user", true},
		{"exact", []string{"$addButton", "$addEmoji"}, "$addEmoji", "$addEmoji", true},
		{"middle of tag", []string{"$getServerVar", "$getUserVar"}, "User", "$getUserVar", true},
		{"case sensitive", []string{"$addButton"}, "addbutton", "", false},
		{"no match", []string{"$addButton"}, "$kick", "", false},
		{"empty list", nil, "ban", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchPartialTag(tt.tags, tt.partial)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("MatchPartialTag(%v, %q) = (%q, %v), want (%q, %v)", tt.tags, tt.partial, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
