package models

import "testing"

func strPtr(s string) *string {
	return &s
}

func TestAdIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		ad       Ad
		expected bool
	}{
		{
			name: "complete image ad",
			ad: Ad{
				AdType:      AdTypeImage,
				Headline:    "Rainy season sale",
				Description: "20% off all orders in Yangon",
				ImageURL:    strPtr("https://cdn.example.com/u1/1.jpg"),
			},
			expected: true,
		},
		{
			name: "complete video ad",
			ad: Ad{
				AdType:      AdTypeVideo,
				Headline:    "New branch opening",
				Description: "Visit us in Mandalay",
				VideoURL:    strPtr("https://cdn.example.com/u1/1.mp4"),
			},
			expected: true,
		},
		{
			name: "image ad missing media",
			ad: Ad{
				AdType:      AdTypeImage,
				Headline:    "Sale",
				Description: "Discounts",
			},
			expected: false,
		},
		{
			name: "video ad with only image url",
			ad: Ad{
				AdType:      AdTypeVideo,
				Headline:    "Sale",
				Description: "Discounts",
				ImageURL:    strPtr("https://cdn.example.com/u1/1.jpg"),
			},
			expected: false,
		},
		{
			name: "missing headline",
			ad: Ad{
				AdType:      AdTypeImage,
				Description: "Discounts",
				ImageURL:    strPtr("https://cdn.example.com/u1/1.jpg"),
			},
			expected: false,
		},
		{
			name: "missing description",
			ad: Ad{
				AdType:   AdTypeImage,
				Headline: "Sale",
				ImageURL: strPtr("https://cdn.example.com/u1/1.jpg"),
			},
			expected: false,
		},
		{
			name: "empty media url",
			ad: Ad{
				AdType:      AdTypeImage,
				Headline:    "Sale",
				Description: "Discounts",
				ImageURL:    strPtr(""),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ad.IsComplete(); got != tt.expected {
				t.Errorf("IsComplete() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidAdType(t *testing.T) {
	if !IsValidAdType(AdTypeImage) || !IsValidAdType(AdTypeVideo) {
		t.Error("image and video must be valid ad types")
	}
	if IsValidAdType("carousel") {
		t.Error("carousel is not a supported ad type")
	}
	if IsValidAdType("") {
		t.Error("empty ad type must be invalid")
	}
}
