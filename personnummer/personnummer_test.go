package personnummer

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/frankban/quicktest"
)

// refDate is the fixed reference date used across the normalization tests.
var refDate = time.Date(2018, 1, 4, 0, 0, 0, 0, time.UTC)

// sixLayouts are the six accepted renderings of the same underlying
// identifier (a person born 1981-12-18, under 100 at the reference date).
var sixLayouts = []string{
	"8112189876",
	"811218-9876",
	"811218+9876",
	"198112189876",
	"19811218-9876",
	"19811218+9876",
}

func TestParse(t *testing.T) {
	c := quicktest.New(t)

	tests := []struct {
		name    string
		input   string
		want    parts
		wantErr bool
	}{
		{
			name:  "ten digits without separator",
			input: "8112189876",
			want:  parts{year: "81", month: "12", day: "18", separator: "", control: "9876"},
		},
		{
			name:  "dash separator",
			input: "811218-9876",
			want:  parts{year: "81", month: "12", day: "18", separator: "-", control: "9876"},
		},
		{
			name:  "plus separator",
			input: "811218+9876",
			want:  parts{year: "81", month: "12", day: "18", separator: "+", control: "9876"},
		},
		{
			name:  "explicit century without separator",
			input: "198112189876",
			want:  parts{year: "1981", month: "12", day: "18", separator: "", control: "9876"},
		},
		{
			name:  "explicit century with dash",
			input: "19811218-9876",
			want:  parts{year: "1981", month: "12", day: "18", separator: "-", control: "9876"},
		},
		{
			name:  "explicit century with plus",
			input: "19811218+9876",
			want:  parts{year: "1981", month: "12", day: "18", separator: "+", control: "9876"},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "birth date only",
			input:   "811218",
			wantErr: true,
		},
		{
			name:    "control group too short",
			input:   "811218-987",
			wantErr: true,
		},
		{
			name:    "control group too long",
			input:   "811218-98765",
			wantErr: true,
		},
		{
			name:    "eleven digits without separator",
			input:   "81121898761",
			wantErr: true,
		},
		{
			name:    "separator in the wrong position",
			input:   "8112-189876",
			wantErr: true,
		},
		{
			name:    "disallowed separator",
			input:   "811218*9876",
			wantErr: true,
		},
		{
			name:    "space separator",
			input:   "811218 9876",
			wantErr: true,
		},
		{
			name:    "leading garbage",
			input:   " 811218-9876",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "811218-9876 ",
			wantErr: true,
		},
		{
			name:    "letter in the year group",
			input:   "a11218-9876",
			wantErr: true,
		},
		{
			name:    "letter in the control group",
			input:   "811218-987a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *quicktest.C) {
			got, err := parse(tt.input)
			if tt.wantErr {
				c.Assert(err, quicktest.Equals, errNoMatch)
				return
			}
			c.Assert(err, quicktest.IsNil)
			c.Assert(got, quicktest.Equals, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	c := quicktest.New(t)

	// every accepted layout of a valid identifier is echoed back unchanged
	for _, layout := range sixLayouts {
		c.Run("layout "+layout, func(c *quicktest.C) {
			got, err := Validate(layout)
			c.Assert(err, quicktest.IsNil)
			c.Assert(got, quicktest.Equals, layout)
		})
	}

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "birth date only",
			input: "811218",
		},
		{
			name:  "structurally valid but failing checksum",
			input: "811218-9875",
		},
		{
			name:  "ascending digits",
			input: "0123456789",
		},
		{
			name:  "explicit century with failing checksum",
			input: "19811218-9875",
		},
		{
			name:  "surrounding whitespace",
			input: " 811218-9876 ",
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *quicktest.C) {
			got, err := Validate(tt.input)
			c.Assert(err, quicktest.Equals, ErrInvalid)
			c.Assert(err.Error(), quicktest.Equals, "Invalid Swedish SSN")
			c.Assert(got, quicktest.Equals, "")
		})
	}
}

func TestNormalize(t *testing.T) {
	c := quicktest.New(t)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "ten digits default to dash convention",
			input: "8112189876",
			want:  "198112189876",
		},
		{
			name:  "dash keeps the naive century",
			input: "811218-9876",
			want:  "198112189876",
		},
		{
			name:  "plus shifts the century back by one hundred years",
			input: "811218+9876",
			want:  "188112189876",
		},
		{
			name:  "explicit century is used as-is",
			input: "198112189876",
			want:  "198112189876",
		},
		{
			name:  "explicit century with dash",
			input: "19811218-9876",
			want:  "198112189876",
		},
		{
			name:  "explicit century with plus has no century effect",
			input: "19811218+9876",
			want:  "198112189876",
		},
		{
			name:  "person that crossed the hundred-year mark",
			input: "171218+9859",
			want:  "191712189859",
		},
		{
			name:  "two-digit year equal to the reference year",
			input: "181218-9874",
			want:  "201812189874",
		},
		{
			name:  "two-digit year one past the reference year wraps a century",
			input: "191218-9873",
			want:  "191912189873",
		},
		{
			name:  "year zero-zero resolves to the reference century",
			input: "000101-1238",
			want:  "200001011238",
		},
		{
			name:    "birth date only",
			input:   "811218",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "failing checksum",
			input:   "811218-9875",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *quicktest.C) {
			got, err := Normalize(refDate, tt.input)
			if tt.wantErr {
				c.Assert(err, quicktest.Equals, ErrInvalid)
				c.Assert(got, quicktest.Equals, "")
				return
			}
			c.Assert(err, quicktest.IsNil)
			c.Assert(got, quicktest.Equals, tt.want)
		})
	}
}

// TestNormalizeLayoutAgreement checks that all layouts carrying the same
// century information resolve to the identical canonical string. The
// two-digit plus layout is excluded: for a person under 100 it denotes a
// different (one century older) identifier.
func TestNormalizeLayoutAgreement(t *testing.T) {
	c := quicktest.New(t)

	agreeing := []string{
		"8112189876",
		"811218-9876",
		"198112189876",
		"19811218-9876",
		"19811218+9876",
	}
	for _, layout := range agreeing {
		got, err := Normalize(refDate, layout)
		c.Assert(err, quicktest.IsNil)
		c.Assert(got, quicktest.Equals, "198112189876", quicktest.Commentf("layout %q", layout))
	}
}

// TestNormalizeReferenceDateEdges pins the behavior of the literal century
// arithmetic for reference dates far away from the identifier's era: the
// century digits fall out of the subtraction, and a reference year that
// leaves no two well-formed century digits is rejected rather than producing
// a malformed canonical string.
func TestNormalizeReferenceDateEdges(t *testing.T) {
	c := quicktest.New(t)

	tests := []struct {
		name    string
		ref     time.Time
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "early CE reference year yields century zero",
			ref:   time.Date(50, 1, 1, 0, 0, 0, 0, time.UTC),
			input: "811218-9876",
			want:  "008112189876",
		},
		{
			name:    "early CE reference year with plus underflows",
			ref:     time.Date(50, 1, 1, 0, 0, 0, 0, time.UTC),
			input:   "811218+9876",
			wantErr: true,
		},
		{
			name:    "five-digit reference year overflows the century",
			ref:     time.Date(12018, 1, 1, 0, 0, 0, 0, time.UTC),
			input:   "811218-9876",
			wantErr: true,
		},
		{
			name:  "far future four-digit reference year",
			ref:   time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC),
			input: "811218-9876",
			want:  "998112189876",
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *quicktest.C) {
			got, err := Normalize(tt.ref, tt.input)
			if tt.wantErr {
				c.Assert(err, quicktest.Equals, ErrInvalid)
				return
			}
			c.Assert(err, quicktest.IsNil)
			c.Assert(got, quicktest.Equals, tt.want)
		})
	}
}

// TestIsValidAgreesWithValidate drives the equivalence between IsValid and
// Validate over fixed and randomized inputs, valid or not.
func TestIsValidAgreesWithValidate(t *testing.T) {
	c := quicktest.New(t)
	faker := gofakeit.New(1218)

	inputs := append([]string{}, sixLayouts...)
	inputs = append(inputs, "", "811218", "811218-9875", "0123456789", "not-a-number")
	for i := 0; i < 300; i++ {
		switch i % 3 {
		case 0:
			inputs = append(inputs, faker.Numerify("##########"))
		case 1:
			inputs = append(inputs, faker.Numerify("######-####"))
		default:
			inputs = append(inputs, faker.LetterN(uint(faker.Number(0, 16))))
		}
	}

	for _, input := range inputs {
		_, err := Validate(input)
		c.Assert(IsValid(input), quicktest.Equals, err == nil, quicktest.Commentf("input %q", input))
	}
}

// TestNormalizeExplicitCenturyIgnoresReferenceDate checks that inputs with a
// four-digit year resolve to the same canonical string whatever the
// reference date is.
func TestNormalizeExplicitCenturyIgnoresReferenceDate(t *testing.T) {
	c := quicktest.New(t)
	faker := gofakeit.New(1904)

	from := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		ref := faker.DateRange(from, to)
		for _, layout := range []string{"198112189876", "19811218-9876", "19811218+9876"} {
			got, err := Normalize(ref, layout)
			c.Assert(err, quicktest.IsNil)
			c.Assert(got, quicktest.Equals, "198112189876", quicktest.Commentf("layout %q ref %s", layout, ref))
		}
	}
}
