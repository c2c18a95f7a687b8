package datarelease

import (
	"errors"
	"testing"
	"time"
)

func TestParseAttemptFilename(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantNumber int
		wantTime   time.Time
		wantWon    bool
		wantRating int
		wantLang   string
	}{
		{
			name:       "winning csharp",
			filename:   "attempt003-20150601-143000-winning2.cs",
			wantNumber: 3,
			wantTime:   time.Date(2015, 6, 1, 14, 30, 0, 0, time.UTC),
			wantWon:    true,
			wantRating: 2,
			wantLang:   LanguageCSharp,
		},
		{
			name:       "plain java",
			filename:   "attempt120-20141231-235959.java",
			wantNumber: 120,
			wantTime:   time.Date(2014, 12, 31, 23, 59, 59, 0, time.UTC),
			wantLang:   LanguageJava,
		},
		{
			name:       "rating one",
			filename:   "attempt000-20150101-000000-winning1.java",
			wantNumber: 0,
			wantTime:   time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			wantWon:    true,
			wantRating: 1,
			wantLang:   LanguageJava,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttemptFilename(tt.filename)
			if err != nil {
				t.Fatalf("ParseAttemptFilename(%q) failed: %v", tt.filename, err)
			}
			if got.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", got.Number, tt.wantNumber)
			}
			if !got.Timestamp.Equal(tt.wantTime) {
				t.Errorf("Timestamp = %v, want %v", got.Timestamp, tt.wantTime)
			}
			if got.Timestamp.Location() != time.UTC {
				t.Errorf("Timestamp location = %v, want UTC", got.Timestamp.Location())
			}
			if got.Won != tt.wantWon {
				t.Errorf("Won = %v, want %v", got.Won, tt.wantWon)
			}
			if tt.wantWon {
				if got.Rating == nil || *got.Rating != tt.wantRating {
					t.Errorf("Rating = %v, want %d", got.Rating, tt.wantRating)
				}
			} else if got.Rating != nil {
				t.Errorf("Rating = %d, want nil", *got.Rating)
			}
			if got.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", got.Language, tt.wantLang)
			}
		})
	}
}

func TestParseAttemptFilenameRejects(t *testing.T) {
	bad := []string{
		"attempt003-20150601.cs",
		"attempt003-20150601-143000-winning9.cs",
		"attempt003-20150601-143000-winning0.cs",
		"attempt003-20150601-143000-winning.cs",
		"attempt03-20150601-143000.cs",
		"attempt003-20151301-143000.cs",
		"attempt003-20150601-246000.cs",
		"attempt003-20150601-143000.py",
		"attempt003-20150601-143000.cs.bak",
		"attempt003-20150601-143000xcs",
		"experience",
		"",
	}

	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAttemptFilename(name)
			if err == nil {
				t.Fatalf("expected %q to be rejected", name)
			}
			if !errors.Is(err, ErrMalformedFilename) {
				t.Errorf("expected ErrMalformedFilename, got %v", err)
			}
		})
	}
}

func TestAttemptFilenameRoundTrip(t *testing.T) {
	names := []string{
		"attempt003-20150601-143000-winning2.cs",
		"attempt001-20150601-090102.java",
		"attempt999-20160229-235959-winning3.java",
		"attempt042-20150415-000001.cs",
	}

	for _, name := range names {
		an, err := ParseAttemptFilename(name)
		if err != nil {
			t.Fatalf("ParseAttemptFilename(%q) failed: %v", name, err)
		}
		if got := an.Filename(); got != name {
			t.Errorf("Filename() = %q, want %q", got, name)
		}
		if (an.Rating != nil) != an.Won {
			t.Errorf("%s: rating presence %v does not match won %v", name, an.Rating != nil, an.Won)
		}
	}
}
