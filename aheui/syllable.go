package aheui

import (
	hangul "github.com/suapapa/go_hangul"
)

// Initial is the leading consonant of a syllable, it selects the operation.
type Initial int

const (
	InitialGiyeok Initial = iota
	InitialSsangGiyeok
	InitialNieun
	InitialDigeut
	InitialSsangDigeut
	InitialRieul
	InitialMieum
	InitialBieup
	InitialSsangBieup
	InitialSiot
	InitialSsangSiot
	InitialIeung
	InitialJieut
	InitialSsangJieut
	InitialChieut
	InitialKieuk
	InitialTieut
	InitialPieup
	InitialHieut
)

// Vowel is the medial of a syllable, it selects the movement.
type Vowel int

const (
	VowelA Vowel = iota
	VowelAe
	VowelYa
	VowelYae
	VowelEo
	VowelE
	VowelYeo
	VowelYe
	VowelO
	VowelWa
	VowelWae
	VowelOe
	VowelYo
	VowelU
	VowelWeo
	VowelWe
	VowelWi
	VowelYu
	VowelEu
	VowelUi
	VowelI
)

// Final is the trailing consonant of a syllable, it is the operand of some
// operations and doubles as a storage index.
type Final int

const (
	FinalBlank Final = iota
	FinalGiyeok
	FinalSsangGiyeok
	FinalGiyeokSiot
	FinalNieun
	FinalNieunJieut
	FinalNieunHieut
	FinalDigeut
	FinalRieul
	FinalRieulGiyeok
	FinalRieulMieum
	FinalRieulBieup
	FinalRieulSiot
	FinalRieulTieut
	FinalRieulPieup
	FinalRieulHieut
	FinalMieum
	FinalBieup
	FinalBieupSiot
	FinalSiot
	FinalSsangSiot
	FinalIeung
	FinalJieut
	FinalChieut
	FinalKieuk
	FinalTieut
	FinalPieup
	FinalHieut
)

// FinalCount is the number of final consonants including the blank one,
// and therefore the size of the storage bank.
const FinalCount = 28

// Hangul syllables block and the jamo blocks hangul.Split maps into.
const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
	leadBase     = 0x1100
	medialBase   = 0x1161
	tailBase     = 0x11A7 // one below the first tail jamo, 0 means no final
)

// Syllable is a Hangul syllable decomposed into its three components.
type Syllable struct {
	r       rune
	initial Initial
	vowel   Vowel
	final   Final
}

// DecodeSyllable decomposes r into initial, vowel and final. The second
// return value is false when r is not a composed Hangul syllable.
func DecodeSyllable(r rune) (Syllable, bool) {
	if r < syllableBase || r > syllableLast {
		return Syllable{}, false
	}
	l, m, t := hangul.Split(r)
	s := Syllable{
		r:       r,
		initial: Initial(l - leadBase),
		vowel:   Vowel(m - medialBase),
	}
	if t != 0 {
		s.final = Final(t - tailBase)
	}
	return s, true
}

func (s Syllable) Rune() rune {
	return s.r
}

func (s Syllable) Initial() Initial {
	return s.initial
}

func (s Syllable) Vowel() Vowel {
	return s.vowel
}

func (s Syllable) Final() Final {
	return s.final
}
