package nickname

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/errs"
)

var nicknamePattern = regexp.MustCompile(`^([A-Z][a-z]+)([A-Z][a-z]+)(\d{1,3})$`)

func TestDefault_Dictionary(t *testing.T) {
	d := Default()
	if len(d.Adjectives) != 355 || len(d.Nouns) != 290 {
		t.Fatalf("dictionary sizes = %d/%d, want 355/290", len(d.Adjectives), len(d.Nouns))
	}
	if d.Adjectives[0] != "Able" || d.Nouns[0] != "Abacus" {
		t.Errorf("first words = %q/%q", d.Adjectives[0], d.Nouns[0])
	}
	if d.PoolSize().Int64() != 999*355*290 {
		t.Errorf("PoolSize = %s", d.PoolSize())
	}
}

func TestDerive_KnownVectors(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f", "BrightPagoda153"},
		{"e16b82646823b51bdda76a2eb2147afbe57b2100af46a61adc0671820a6dc991", "StinkyMoss283"},
		{"242bb123c13a7cb24708f16000fbabe1c4eae06b6912b47e6b0c2fa08307ec0a", "BrilliantCandle978"},
		{"29c7e1d03d109bcb6af4057c84670702710a9261e16ca6b77a21f5f950644133", "CalmWalrus79"},
		{"0c007605495eb709f5572fcdef6acec89e3fcccf3cd0d919ed305904771c0b4d", "AnimatedOriginal504"},
		{"0", "AbleAbacus0"},
		{strings.Repeat("f", 64), "ZestyZombie998"},
		{"FFFF", "ZestyZipper428"},
	}
	for _, tt := range tests {
		got, err := Derive(tt.hex)
		if err != nil {
			t.Fatalf("Derive(%s): %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("Derive(%s) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestDerive_Errors(t *testing.T) {
	if _, err := Derive(""); !errors.Is(err, errs.ErrMissingRequiredData) {
		t.Errorf("empty: got %v", err)
	}
	for _, bad := range []string{"xyz", "0x12", "-1", "12 34"} {
		if _, err := Derive(bad); !errors.Is(err, errs.ErrParse) {
			t.Errorf("Derive(%q): got %v, want parse error", bad, err)
		}
	}
	var empty *Dictionary
	if _, err := empty.Derive("ab"); !errors.Is(err, errs.ErrMissingRequiredData) {
		t.Errorf("nil dictionary: got %v", err)
	}
}

func TestShorten_KnownVectors(t *testing.T) {
	tests := []struct {
		hex    string
		maxLen int
		want   string
	}{
		{"23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f", 0, "BrightPagoda153"},
		{"0c007605495eb709f5572fcdef6acec89e3fcccf3cd0d919ed305904771c0b4d", 0, "BlueCosmos546"},
		{"344c8af920e3daea139b6b4f557ba2dc88b8c8e780751c50eec2bfc34cef9fb4", 0, "DizzyZenith94"},
		{"23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f", 12, "LushBlimp478"},
		{"70e2b8e0cc3daa4d2a0c622c46f30a5507b4f66feef3893e9eaccfce3f8ff0fc", 12, "EvenIvory883"},
		{"29c7e1d03d109bcb6af4057c84670702710a9261e16ca6b77a21f5f950644133", 12, "CalmWalrus79"},
	}
	for _, tt := range tests {
		got, err := Shorten(tt.hex, Options{MaxLength: tt.maxLen})
		if err != nil {
			t.Fatalf("Shorten(%s, %d): %v", tt.hex, tt.maxLen, err)
		}
		if got != tt.want {
			t.Errorf("Shorten(%s, %d) = %q, want %q", tt.hex, tt.maxLen, got, tt.want)
		}
	}
}

func TestShorten_Exhausted(t *testing.T) {
	got, err := Shorten("23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f", Options{MaxLength: 3, MaxIterations: 5})
	if err != nil {
		t.Fatalf("exhausted budget should not error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestShorten_InvalidFirstHex(t *testing.T) {
	if _, err := Generate("not hex"); !errors.Is(err, errs.ErrParse) {
		t.Errorf("got %v, want parse error", err)
	}
	if _, err := Generate(""); !errors.Is(err, errs.ErrMissingRequiredData) {
		t.Errorf("got %v, want missing data", err)
	}
}

func TestGenerate_Properties(t *testing.T) {
	for i := 0; i < 500; i++ {
		hx, err := digest.SHA256(fmt.Sprintf("seed-%d", i))
		if err != nil {
			t.Fatal(err)
		}
		name, err := Generate(hx)
		if err != nil {
			t.Fatalf("Generate(%s): %v", hx, err)
		}
		if len(name) > DefaultMaxLength {
			t.Fatalf("Generate(%s) = %q, longer than %d", hx, name, DefaultMaxLength)
		}
		m := nicknamePattern.FindStringSubmatch(name)
		if m == nil {
			t.Fatalf("Generate(%s) = %q, not Adjective+Noun+number", hx, name)
		}
		var n int
		fmt.Sscan(m[3], &n)
		if n < 0 || n >= MaxSuffix {
			t.Fatalf("suffix %d out of range in %q", n, name)
		}
		again, _ := Generate(hx)
		if again != name {
			t.Fatalf("non-deterministic: %q vs %q", name, again)
		}
	}
}

func TestLoadDictionary(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(AdjectivesFile, "Red\n\n  Blue  \n")
	write(NounsFile, "Cat\nDog\nOwl\n")

	d, err := LoadDictionary(dir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if strings.Join(d.Adjectives, ",") != "Red,Blue" || strings.Join(d.Nouns, ",") != "Cat,Dog,Owl" {
		t.Fatalf("got %v / %v", d.Adjectives, d.Nouns)
	}
	got, err := Shorten("0", Options{Dictionary: d})
	if err != nil || got != "RedCat0" {
		t.Errorf("Shorten with custom dictionary = %q, %v", got, err)
	}

	write(NounsFile, "\n\n")
	if _, err := LoadDictionary(dir); !errors.Is(err, errs.ErrMissingRequiredData) {
		t.Errorf("empty noun list: got %v", err)
	}
	if _, err := LoadDictionary(filepath.Join(dir, "missing")); !errors.Is(err, errs.ErrIO) {
		t.Errorf("missing dir: got %v", err)
	}
}

// TestGenerate_UpstreamDictionary checks the reference table published with
// the full robonames word lists. Point ROBONAMES_DICT_DIR at a directory
// holding those lists as adjectives.txt and nouns.txt to run it.
func TestGenerate_UpstreamDictionary(t *testing.T) {
	dir := os.Getenv("ROBONAMES_DICT_DIR")
	if dir == "" {
		t.Skip("ROBONAMES_DICT_DIR not set")
	}
	d, err := LoadDictionary(dir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	for _, tt := range upstreamVectors {
		got, err := Shorten(tt.hex, Options{Dictionary: d})
		if err != nil {
			t.Fatalf("Shorten(%s): %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("Shorten(%s) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

var upstreamVectors = []struct {
	hex  string
	want string
}{
	{"23d022aa5dc633f2f115e48fc1f393f051ebdec3dfae41cfcd01bdac3577017f", "EntertainedWin410"},
	{"e16b82646823b51bdda76a2eb2147afbe57b2100af46a61adc0671820a6dc991", "FrankVitro385"},
	{"242bb123c13a7cb24708f16000fbabe1c4eae06b6912b47e6b0c2fa08307ec0a", "VernacularBoxer512"},
	{"29c7e1d03d109bcb6af4057c84670702710a9261e16ca6b77a21f5f950644133", "SwimmingPuzzle724"},
	{"70e2b8e0cc3daa4d2a0c622c46f30a5507b4f66feef3893e9eaccfce3f8ff0fc", "IrritatingLimp990"},
	{"2f26321bf6cf99dea51a1664fc812ee3d3123313b9b7abcc79d4bbbaf6b9a470", "UnknownMap519"},
	{"8d9531f05fde6f2e44961b113141e1625f20d17e25101c35071660f8e6a705f0", "UnworthyHymn429"},
	{"29e6baf2d7442963517e93f2b4fe6a326a0474410ce916778ce800e7cb6524af", "LegibleTract390"},
	{"672e48fd4a7d2a28923cb637ff9aca48ad398ff058ce39d48d1463ef5396ebd3", "FidgetyOverhaul213"},
	{"f387da94931be5545e8b618640a27ec2cfc2fec99570f477a3f0057d7c8de597", "GeographicZeal110"},
	{"0704bc96c5909c47d2461ad161db271f43649aa5331b514b7b484c0cecfd72f9", "HumorousOriginal57"},
	{"44623105ab0e9b17674cf0aa4df81b5a8acba636f1cf2f4bf03c516b53853be3", "IrritatedApex167"},
	{"72b1e55e5afce59d9f59f115d5ffcfebbb623d17fb4ed14793655fba854b26a2", "ComicalBicycle160"},
	{"2e5fb21fdc3c628c29707d89b08b8cfa0f1ced10cf90aa3c42ad528cee0eca45", "StinkyFormation19"},
	{"1057a3d72d96b643ebb924859705f1b385371210cfbfdf78eedc8e5f9c34c137", "InaptMajesty747"},
	{"1e7ad4d15162c3f813c542d813ffae5f027aaa0c174a7cf3a9840fda20881824", "SolitaryWear892"},
	{"5881365a9e19ed77f479d6aa28bbc0a4b2c879a8b75debaf87b327af377acc35", "ChivalrousOlive8"},
	{"63c2b815132c79ef3a874f4138b6786c19acd94556d62f1170d55af40b3def92", "SurgicalStink272"},
	{"682258198870f90832f0854a8bee08eb587438a1dd5b12ada901676907347d38", "ScarredOrganism49"},
	{"efa4068f4e6825526ced61d8b77f6bd237f2f9d001672cad272e2fec8474b213", "SatinDiffidence476"},
	{"735f64aa04f66be52aa32ad39344150a704b6142a03bb0248b8198a9e2374e1b", "TactualExhibit853"},
	{"015a4b8ded8107c4bb37763d25b22f0e7be64be5587b7609744b76403ee963fa", "UnhealthyBuild495"},
	{"006833a6d33c4e4d9d3785505f6d68a29b5e5e9b40d6767a5ae017dc6b3872d0", "OnerousMast982"},
	{"d3f5e6c547af1c268bfc00bc92bbdbbbf80df2e30a8eaf5f2a199a07e0320cda", "PertToner606"},
	{"3ee5dd464116bb1cbe225a07d4577b459cc49da215db0dec7e832d8cec3a6ec2", "BloomingProduce238"},
	{"0c007605495eb709f5572fcdef6acec89e3fcccf3cd0d919ed305904771c0b4d", "CuriousAdhesive448"},
	{"5716513f0e782df1fa1c7b4b2bfc5b74416a4e52251c8cecaf890413d32e3624", "ConvolutedOnset713"},
	{"84424fd8f3b996448737b7b7e1649b8856d042fb63e739fd22c6e0a1a4d47a23", "GregariousMix774"},
	{"3544ad1a5ce79496d3920c26aa5666f6c77222b18458a679543041c54c309ee7", "BrawnyEtiquette688"},
	{"e1b9ebf74c15f82f9b94d9cc1b5de69000f61a98d3d456086436cf0a04ade2d1", "AdaptableBushel935"},
	{"72914bdd87104d8edf5d375d1b2aa64aac4a0d930da925d65bc91dd9a0ec89a5", "FilteredMale710"},
	{"da3764eb861e39c5c092b7c18c2f7b64dd29afe8b1ba7c0ba66d5d344709d5b1", "DetachedXylyl936"},
	{"40dde35f9e54a568783152088dcb8867c4201aaef6282e8eac358600577fbcb7", "ThisHick743"},
	{"92c64aa3ad5474072b5428f1900c0ecf7a404e7db824d789e68124d3124ddfc8", "FastHousehold302"},
	{"023d51ba37e49ba8fd3c0d2256d52f8f24049923a7a87fa25d4051d9e8c0db65", "QuietExcise380"},
	{"703d70855f2362a851dc50675b0f1e33b22cdf5550c4a47093b8ecad5084ef04", "VisceralSunspot235"},
	{"344c8af920e3daea139b6b4f557ba2dc88b8c8e780751c50eec2bfc34cef9fb4", "TrainableStripe521"},
	{"a5b28e037299321af4acca4b4800ff96812085610a9396daa2e72630831ca954", "ShriekingOzone191"},
	{"6f8f86121107866dc1993d31901320425041edb22ae819086a72f513cec0a026", "EuphemisticRope564"},
	{"9004e73f27dc2dbc2e7e2f94d1c1adb8f9e18774de9e384e6f3658678af86d49", "UntaintedHill937"},
	{"e2c7a42525878575087b8bbb6315d9c171925dbe6322272e55e631ada1bb458f", "LeftHook809"},
	{"52efa730b1259e501831fbe0e6f3d0544a6181d5ce39f16a484d347ca1eb6aa7", "MalleablePorch278"},
}
