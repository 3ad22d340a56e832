package wif

import (
	"time"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
)

// Metadata describes the draft beyond the sett and weave.
// The zero value is usable: built-in palette, one repeat each way, no date.
type Metadata struct {
	Title       string
	Author      string
	Date        time.Time // zero → no Date line
	WarpRepeats int       // 0 → 1
	WeftRepeats int       // 0 → 1
	Palette     palette.Palette
}

// Draft is a serialized loom draft ready to be written to disk.
type Draft struct {
	Content  string
	Filename string
}

// Decoded is what ParseDraft recovers.
type Decoded struct {
	Title       string
	Sett        sett.Sett
	Pattern     weave.Pattern
	Warp        []string // colour code per warp thread, one repeat
	Weft        []string // colour code per weft pick, one repeat
	WarpRepeats int
	WeftRepeats int
}

// WIF constants.
const (
	wifVersion    = "1.1"
	wifDevelopers = "wif@mhsoft.com"
	sourceProgram = "tartan"
	sourceVersion = "1.0"
	dateLayout    = "January 2, 2006"
	fileExt       = ".wif"
)

// Section names.
const (
	secWIF          = "WIF"
	secContents     = "CONTENTS"
	secText         = "TEXT"
	secColorPalette = "COLOR PALETTE"
	secWeaving      = "WEAVING"
	secWarp         = "WARP"
	secWeft         = "WEFT"
	secColorTable   = "COLOR TABLE"
	secThreading    = "THREADING"
	secTieUp        = "TIEUP"
	secTreadling    = "TREADLING"
	secWarpColors   = "WARP COLORS"
	secWeftColors   = "WEFT COLORS"
	secTartan       = "PRIVATE TARTAN"
	secTartanColors = "PRIVATE TARTAN COLORS"
)
