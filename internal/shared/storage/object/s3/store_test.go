package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "resumes/file.pdf", want: "resumes/file.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "resumes/file.pdf", want: "uploads/resumes/file.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "resumes/file.pdf", want: "uploads/resumes/file.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/resumes/file.pdf", want: "uploads/resumes/file.pdf"},
		{name: "nested prefix", prefix: "uploads/prod", key: "resumes/file.pdf", want: "uploads/prod/resumes/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	s := &Store{bucket: "hr-uploads", region: "ap-south-1", prefix: ""}
	got := s.PublicURL("resumes/123-cv.pdf")
	want := "https://hr-uploads.s3.ap-south-1.amazonaws.com/resumes/123-cv.pdf"
	if got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
