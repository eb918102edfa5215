package assetgen

import "testing"

func TestGenerateResult_FirstImage(t *testing.T) {
	tests := []struct {
		name     string
		result   *GenerateResult
		wantOK   bool
		wantData string
		wantMIME string
	}{
		{
			name:   "nil result",
			result: nil,
		},
		{
			name:   "text only",
			result: &GenerateResult{Parts: []Part{{Text: "no image today"}}},
		},
		{
			name: "skips non-image blobs",
			result: &GenerateResult{Parts: []Part{
				{Data: []byte("{}"), MIMEType: "application/json"},
				{Data: []byte("jpeg"), MIMEType: "image/jpeg"},
			}},
			wantOK:   true,
			wantData: "jpeg",
			wantMIME: "image/jpeg",
		},
		{
			name: "first of several images",
			result: &GenerateResult{Parts: []Part{
				{Text: "two options"},
				{Data: []byte("one"), MIMEType: "image/png"},
				{Data: []byte("two"), MIMEType: "image/webp"},
			}},
			wantOK:   true,
			wantData: "one",
			wantMIME: "image/png",
		},
		{
			name: "empty image data is ignored",
			result: &GenerateResult{Parts: []Part{
				{MIMEType: "image/png"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, ok := tt.result.FirstImage()
			if ok != tt.wantOK {
				t.Fatalf("FirstImage() ok = %v, want %v", ok, tt.wantOK)
			}
			if string(img.Data) != tt.wantData {
				t.Errorf("FirstImage() data = %q, want %q", img.Data, tt.wantData)
			}
			if img.MIMEType != tt.wantMIME {
				t.Errorf("FirstImage() MIME = %q, want %q", img.MIMEType, tt.wantMIME)
			}
		})
	}
}
