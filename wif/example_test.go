package wif_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
	"github.com/katalvlaran/tartan/wif"
)

// ExampleGenerateDraft exports a small sett and reads it back.
func ExampleGenerateDraft() {
	s := sett.MustParse("K/4 R2 Y/2")
	d, err := wif.GenerateDraft(s, weave.Get(weave.Twill22), wif.Metadata{Title: "Demo Sett"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Filename)

	back, err := wif.ParseDraft(strings.NewReader(d.Content), palette.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(back.Sett, back.Pattern.ID, len(back.Warp))

	// Output:
	// demo-sett.wif
	// K/4 R2 Y/2 twill-2-2 10
}
