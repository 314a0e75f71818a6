// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyze

import (
	"strings"
	"unicode"
)

// closed word classes for the rule-based tagger
var (
	determiners = wordSet("the a an this that these those each every either neither some any no")
	conjuncts   = wordSet("and or but nor so yet")
	preposits   = wordSet("in on at by for with of to from about into over after under between through during against")
	pronouns    = wordSet("i you he she it we they me him her us them my your his its our their mine yours hers ours theirs")
	modals      = wordSet("can could will would shall should may might must")
	beHaveDo    = wordSet("be am is are was were been being have has had having do does did doing")
)

// english stopwords, the usual short list
var stopwords = wordSet("i me my myself we our ours you your he him his she her it its they them " +
	"their what which who this that these those am is are was were be been being have has had do " +
	"does did a an the and but if or because as until while of at by for with about against " +
	"between into through during before after above below to from up down in out on off over " +
	"under again then once here there when where why how all any both each few more most other " +
	"some such no nor not only own same so than too very s t can will just don should now")

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// 🏷️ SimpleTagger is the built-in POSTagger: closed-class lookups plus
// suffix rules, defaulting to NN. It uses Penn-style tag names so its
// histogram reads like one from a real tagger.
type SimpleTagger struct{}

func (SimpleTagger) Tag(tokens []string) []Tag {
	tags := make([]Tag, len(tokens))
	for i, tok := range tokens {
		tags[i] = Tag{Token: tok, POS: tagToken(tok)}
	}
	return tags
}

func tagToken(tok string) string {
	if tok == "" {
		return "NN"
	}
	if isNumeric(tok) {
		return "CD"
	}

	switch {
	case contains(determiners, tok):
		return "DT"
	case contains(conjuncts, tok):
		return "CC"
	case contains(preposits, tok):
		return "IN"
	case contains(pronouns, tok):
		return "PRP"
	case contains(modals, tok):
		return "MD"
	case contains(beHaveDo, tok):
		return "VB"
	}

	switch {
	case strings.HasSuffix(tok, "ly"):
		return "RB"
	case strings.HasSuffix(tok, "ing") && len(tok) > 4:
		return "VBG"
	case strings.HasSuffix(tok, "ed") && len(tok) > 3:
		return "VBD"
	case strings.HasSuffix(tok, "ous"), strings.HasSuffix(tok, "ful"),
		strings.HasSuffix(tok, "ive"), strings.HasSuffix(tok, "able"),
		strings.HasSuffix(tok, "ic"):
		return "JJ"
	case strings.HasSuffix(tok, "s") && len(tok) > 3 && !strings.HasSuffix(tok, "ss"):
		return "NNS"
	}
	return "NN"
}

func contains(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// linguisticAnalysis computes the POS histogram (first-seen tag order),
// stopword count, and lexical diversity over lowercased word tokens.
func linguisticAnalysis(text string, tagger POSTagger) []Metric {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	if len(tokens) == 0 {
		return []Metric{
			{"pos_tag_counts", []Metric{}},
			{"stopword_count", 0},
			{"lexical_diversity", 0.0},
		}
	}

	counts := make(map[string]int)
	var order []string
	for _, tag := range tagger.Tag(tokens) {
		if _, seen := counts[tag.POS]; !seen {
			order = append(order, tag.POS)
		}
		counts[tag.POS]++
	}
	posCounts := make([]Metric, len(order))
	for i, pos := range order {
		posCounts[i] = Metric{pos, counts[pos]}
	}

	stops := 0
	unique := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if contains(stopwords, tok) {
			stops++
		}
		unique[tok] = struct{}{}
	}

	return []Metric{
		{"pos_tag_counts", posCounts},
		{"stopword_count", stops},
		{"lexical_diversity", round2(float64(len(unique)) / float64(len(tokens)))},
	}
}
