package shortcode

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Identifier/shortcode pairs observed on the platform.
var knownPairs = []struct {
	id        uint64
	shortcode string
}{
	{1032176, "D7_w"},
	{420261136, "ZDK0Q"},
	{155229606, "JQJ2m"},
	{559987755, "hYLwr"},
	{343935491, "UgAoD"},
	{88295815, "FQ0mH"},
	{346274608, "Uo7sw"},
	{55183040, "DSgbA"},
	{389533852, "XN9Cc"},
	{343580036, "Uep2E"},
	{505175937, "eHF-B"},
	{448419901, "aulg9"},
	{186055513, "LFvtZ"},
	{158516524, "JcsUs"},
	{408610238, "YWuW-"},
	{631245030, "loAjm"},
	{945953217714958218, "0gs3CMCa-K"},
	{785608381888572952, "rnCqk3Ca4Y"},
	{998489928793395766, "3bWUzNiRI2"},
	{1064554064761151286, "7GDkgaSV82"},
	{926017417632111845, "zZ3-9hyVzl"},
	{642780934423724522, "jrndqwuEHq"},
	{1150374260838089202, "_280uYAcHy"},
	{1152359739175960764, "_-ARPLC4C8"},
	{883387299387146368, "xCbBGDEACA"},
	{828241399736435134, "t-gSozkAG-"},
	{735469007897887473, "o06Sp_EALx"},
	{676101811602456942, "lh_wP4kAFu"},
	{1141234139317903554, "_Wemc3l6DC"},
	{1115165929728614906, "953YEzF6H6"},
	{874156497510277596, "whoLP4MyHc"},
	{2449691244203188128, "CH_DTUkHZ-g"},
	{2426181710167934711, "CGrh2kzHAb3"},
	{2322199054406563691, "CA6G7yHprdr"},
	{2314705107739747249, "CAffAganCOx"},
	{2302986725882281126, "B_12jm2pzym"},
	{2299300796650797594, "B_oweRwJLoa"},
	{2293858690356666551, "B_VbFNTpuC3"},
	{2466107465267174685, "CI5X6x1MF0d"},
	{2463221533690049840, "CIvHu8msDUw"},
	{2461102206941679598, "CInl2rwsE_u"},
	{2450830923490466966, "CIDGb1nMRyW"},
	{2466184429014696586, "CI5pav6BUKK"},
	{2443605102897325711, "CHpbeTxhuaP"},
	{2430622790328925114, "CG7TozAhju6"},
	{2405281636880466661, "CFhRuevB8Ll"},
}

func TestEncodeDecodeKnownPairs(t *testing.T) {
	for _, p := range knownPairs {
		assert.Equal(t, p.shortcode, Encode(p.id), "Encode(%d)", p.id)

		id, err := Decode(p.shortcode)
		require.NoError(t, err, "Decode(%q)", p.shortcode)
		assert.Equal(t, p.id, id, "Decode(%q)", p.shortcode)
	}
}

func TestEncodeDecodeBoundaries(t *testing.T) {
	assert.Equal(t, "", Encode(0))
	assert.Equal(t, "B", Encode(1))
	assert.Equal(t, "_", Encode(63))
	assert.Equal(t, "BA", Encode(64))
	assert.Equal(t, "P__________", Encode(math.MaxUint64))

	tests := []struct {
		shortcode string
		want      uint64
	}{
		{"", 0},
		{"B", 1},
		{"AAAB", 1},
		{"P__________", math.MaxUint64},
	}
	for _, tt := range tests {
		got, err := Decode(tt.shortcode)
		require.NoError(t, err, "Decode(%q)", tt.shortcode)
		assert.Equal(t, tt.want, got, "Decode(%q)", tt.shortcode)
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 2, 63, 64, 4095, 4096, 1 << 32, 1<<63 - 1, 1 << 63, math.MaxUint64 - 1, math.MaxUint64}
	for i := uint64(1); i < 1<<20; i = i*7 + 3 {
		ids = append(ids, i, i<<40, math.MaxUint64/i)
	}

	for _, id := range ids {
		s := Encode(id)
		assert.LessOrEqual(t, len(s), 12, "Encode(%d) = %q", id, s)
		assert.False(t, strings.HasPrefix(s, "A"), "Encode(%d) = %q", id, s)

		got, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, id, got, "round trip of %d via %q", id, s)
	}
}

func TestDecodePrivateShortcode(t *testing.T) {
	id, err := Decode("Bfu-eHrgAXDlJ8ifgkj-lm4H6_UHy5GCAzsBU80")
	require.NoError(t, err)
	assert.Equal(t, uint64(1724590456043472323), id)
	assert.Equal(t, "Bfu-eHrgAXD", Encode(id))

	id, err = Decode("CH5LLEGnhWDZpMs--h6rwCecLT3So9_ZOwTKCk0")
	require.NoError(t, err)
	assert.Equal(t, uint64(2448037011284432259), id)
	assert.Equal(t, "CH5LLEGnhWD", Encode(id))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		shortcode string
		wantErr   error
	}{
		{"twelve chars", strings.Repeat("X", 12), ErrInvalidLength},
		{"twenty-eight chars", strings.Repeat("X", 28), ErrInvalidLength},
		{"forty chars", strings.Repeat("X", 40), ErrInvalidLength},
		{"non-base64 char", "CJBsZ11M*ha", ErrInvalidEncoding},
		{"padding char", "CJBsZ11MYh=", ErrInvalidEncoding},
		{"overflows identifier", "Q__________", ErrInvalidEncoding},
		{"private with bad body", "C*5LLEGnhWD" + strings.Repeat("X", PrivateSuffixLen), ErrInvalidEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.shortcode)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsPrivate(t *testing.T) {
	suffix := strings.Repeat("X", PrivateSuffixLen)
	for _, p := range knownPairs {
		assert.False(t, IsPrivate(p.shortcode), p.shortcode)
		assert.True(t, IsPrivate(p.shortcode+suffix), p.shortcode+suffix)
	}

	assert.True(t, IsPrivate("Bfu-eHrgAXDlJ8ifgkj-lm4H6_UHy5GCAzsBU80"))
	assert.False(t, IsPrivate(suffix))
	assert.True(t, IsPrivate("B"+suffix))
	assert.False(t, IsPrivate(strings.Repeat("B", 12)+suffix))
}

func TestToPublic(t *testing.T) {
	suffix := strings.Repeat("X", PrivateSuffixLen)
	for _, p := range knownPairs {
		assert.Equal(t, p.shortcode, ToPublic(p.shortcode))
		assert.Equal(t, p.shortcode, ToPublic(p.shortcode+suffix))
	}

	assert.Equal(t, "Bfu-eHrgAXD", ToPublic("Bfu-eHrgAXDlJ8ifgkj-lm4H6_UHy5GCAzsBU80"))
	assert.Equal(t, suffix, ToPublic(suffix))
}
