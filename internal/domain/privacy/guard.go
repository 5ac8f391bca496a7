package privacy

import "regexp"

// piiRequestPatterns match questions that ask for another person's private
// data. The set deliberately leans toward false positives: a blocked lookup is
// a disclaimer, a missed one is a privacy incident.
var piiRequestPatterns = []*regexp.Regexp{
	// "phone number of Juan" / "contact ni Maria" / "cellphone ng kapitbahay"
	regexp.MustCompile(`(?i)\b(?:phone|contact|mobile|cell(?:phone)?|telepono)\s*(?:number|no\.?|#)?\s+(?:of|ni|ng|kay)\s+\S+`),
	// "address of ..." / "saan nakatira si ..."
	regexp.MustCompile(`(?i)\b(?:address|tirahan|bahay)\s+(?:of|ni|ng|kay)\s+\S+`),
	regexp.MustCompile(`(?i)\b(?:saan|where)\s+(?:po\s+)?(?:nakatira|naka-?tira|lives?|living)\b`),
	// "birthday of ..." / "kailan ang kaarawan ni ..."
	regexp.MustCompile(`(?i)\b(?:birthday|birth\s*date|kaarawan)\s+(?:of|ni|ng|kay)\s+\S+`),
	regexp.MustCompile(`(?i)\bemail\s*(?:address)?\s+(?:of|ni|ng|kay)\s+\S+`),
	// roster requests
	regexp.MustCompile(`(?i)\b(?:list|listahan|names?|mga pangalan)\s+(?:of|ng)\s+(?:residents?|members?|senior|beneficiar|nakatira)`),
	regexp.MustCompile(`(?i)\bsino(?:-sino)?\s+(?:po\s+)?ang\s+(?:mga\s+)?(?:nakatira|residente|miyembro|benepisyaryo)`),
	// explicit personal-data phrasing
	regexp.MustCompile(`(?i)\b(?:personal\s+(?:data|information|details)|impormasyon)\s+(?:of|ni|ng|kay|about|tungkol)\b`),
}

// selfDisclosurePatterns match text that itself carries PII-shaped content.
var selfDisclosurePatterns = []*regexp.Regexp{
	phonePattern,
	emailPattern,
	slashDate,
	isoDate,
	idNumberPattern,
	selfIntro,
}

// IsPIIRequest reports whether the text asks for someone else's private data.
func IsPIIRequest(text string) bool {
	for _, p := range piiRequestPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// HasSelfDisclosure reports whether the text contains PII-shaped substrings
// such as phone numbers, emails, dates, ID numbers, or a self-introduction.
func HasSelfDisclosure(text string) bool {
	for _, p := range selfDisclosurePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
