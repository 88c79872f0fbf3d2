package refine

import "regexp"

// prefixWords are generic leading words stripped from holder and author
// names before either is accepted -- verbs and conjunctions a detector
// commonly captures as part of the name it's attached to.
var prefixWords = map[string]bool{
	"?": true, "??": true, "????": true, "(insert": true, "then": true,
	"current": true, "year)": true, "maintained": true, "by": true,
	"developed": true, "created": true, "written": true, "recoded": true,
	"coded": true, "modified": true, "maintainedcreated": true, "$year": true,
	"year": true, "uref": true, "owner": true, "from": true, "and": true,
	"of": true, "to": true, "for": true, "or": true, "<p>": true,
}

func withPrefixes(extra ...string) map[string]bool {
	m := make(map[string]bool, len(prefixWords)+len(extra))
	for k := range prefixWords {
		m[k] = true
	}
	for _, w := range extra {
		m[w] = true
	}
	return m
}

var copyrightSuffixes = set(
	"copyright", ".", ",", "year", "parts", "any", "0", "1", "author",
	"all", "some", "and", "</p>", "is", "-", "distributed", "information",
	"credited",
)

var authorPrefixes = withPrefixes(
	"contributor", "contributors", "contributor(s)", "authors", "author",
	"authors'", "author:", "author(s)", "authored", "author.", "author'",
	"authors,", "authorship", "maintainer", "co-maintainer", "spdx-filecontributor",
	"</b>", "mailto:", "name'", "a", "moduleauthor", "©",
)

var authorJunk = set(
	"james hacker.", "james random hacker.", "contributor. c. a",
	"grant the u.s. government and others", "james random hacker",
	"james hacker", "company", "contributing project", "its author",
	"gnomovision", "would", "may", "attributions", "the", "app id",
	"project", "previous lucene", "group", "the coordinator", "the owner",
	"a group", "sonatype nexus", "apache tomcat", "visual studio",
	"apache maven", "visual studio and visual studio", "work", "additional",
	"builder", "guice", "incorporated",
)

const authorJunkPrefix = "httpProxy"

var authorJunkPatterns = compilePatterns(
	`(?i)\bpromote products derived from\b`,
	`(?i)\bendorse or promote\b`,
	`(?i)^the builder\b`,
	`(?i)^the line highlight\b`,
	`(?i)^the initial developer\b`,
	`(?i)^trademark\b`,
	`(?i)^time to time\b`,
	`(?i)^the group of people\b`,
	`(?i)^by,? or\b`,
	`(?i)^lucene commit\b`,
	`(?i)^group conversion\b`,
	`(?i)^grunt and npm\b`,
	`(?i)^bigscience\.\b`,
	`(?i)^ctnewmethod\b`,
	`(?i)\bplugins?\. fixes\b`,
	`(?i)\bnormalized to upper\b`,
	`(?i)\benhancing and supporting\b`,
	`(?i)\band to credit the\b`,
	`(?i)^other promise\b`,
	`(?i)^record factory\b`,
	`(?i)^the object\b`,
	`(?i)^the owner,?\b`,
	`(?i)^the job$`,
	`(?i)^the ietf\b`,
	`(?i)^manually\b`,
	`(?i)^register\b`,
	`(?i)^communication sent\b`,
	`(?i)^developers tom\b`,
	`(?i)^donald becker$`,
	`(?i)^ext4\.\b`,
	`(?i)\bmore documentation\b`,
	`(?i)\breturn enum\b`,
	`(?i)\breturn u\d`,
	`(?i)\bmore details of status\b`,
	`(?i)\bu64$`,
	`(?i)^\d+\.\d+\s+\d+-\w+-\d+\s+fix\b`,
	`(?i)\bbut not limited to communication\b`,
	`(?i)\bfor have helping\b`,
	`(?i)\bunit of \d+mb\b`,
	`(?i)\bfor the openssl project\b`,
	`(?i)\bwith participation of the open\b`,
	`(?i)\bfurthermore\b`,
	`(?i)\bits cell\. we\b`,
	`(?i)\b@version \$id\b`,
	`(?i)\bsymbols viewer\b`,
	`(?i)\bfinal specification itself\b`,
	`(?i)\bfor each of the audio\b`,
	`(?i)\bfrom start to end\b`,
	`(?i)\boperator to\b`,
	`(?i)^programming with objects\b`,
	`(?i)^grateful to\b`,
	`(?i)^would also like to thank\b`,
	`(?i)^would like to thank\b`,
	`(?i)^intellij idea$`,
	`(?i)^date modified$`,
	`(?i)^date header id name\b`,
	`(?i)^technical committee$`,
	`(?i)^users of the program$`,
	`(?i)^should not be interpreted\b`,
	`(?i)^arnaldo carvalho de melo\b`,
	`(?i)^works devices national\b`,
	`(?i)\band its \d+\.\s*neither\b`,
	`(?i)\band its effective immediately\b`,
	`(?i)\band its neither the\b`,
)

func isJunkAuthor(s string) bool {
	return matchesAny(authorJunkPatterns, s)
}

var holderPrefixes = withPrefixes(
	"-", "a", "<a", "href", "ou", "portions", "portion", "notice", "holders",
	"holder", "property", "parts", "part", "at", "cppyright", "assemblycopyright",
	"c", "works", "present", "right", "rights", "reserved", "held", "is", "(x)",
	"later", "$", "current.year", "©", "author", "authors",
)

var holderPrefixesWithAll = withPrefixes(append(keys(holderPrefixes), "all")...)

var holderSuffixes = set(
	"http", "and", "email", "licensing@", "(minizip)", "website", "(c)",
	"<http", "/>", ".", ",", "year", "some", "all", "right", "rights",
	"reserved", "reserved.", "href", "c", "a", "</p>", "or", "taken",
	"from", "is", "-", "distributed", "information", "credited",
)

var holderJunk = set(
	"a href", "property", "licensing@", "c", "works", "http", "the", "are",
	"?", "cppyright", "parts", "disclaimed", "or", "<holders>", "author",
	"holders", "holder", "holder,", "and/or", "if", "grant", "does", "has",
	"each", "also", "in", "simply", "other", "shall", "said", "who", "your",
	"their", "ensure", "allow", "terms", "information", "contributors",
	"indemnification", "license", "claimed", "but", "agrees", "patent",
	"owner", "yyyy", "expressly", "stating", "enforce", "d", "ss",
	"given", "may", "every", "no", "good", "row", "logo", "flag", "updated",
	"law", "england", "tm", "pgp", "distributed", "as", "null", "psy",
	"object", "ga", "ka", "aa", "qa", "yx", "ac", "gn", "cb", "ib", "qb",
	"py", "pu", "ce", "nmd", "a1", "deg", "gnu", "with", "yy", "c/",
	"messages", "licenses", "not limited", "charge", "case 2", "dot",
	"width", "len", "do", "date", "year", "note", "update", "info",
	"notices", "duplicated", "register", "isascii", "iscntrl", "isprint",
	"isdigit", "isalpha", "toupper", "yyunput", "ambiguous", "indir",
	"notive", "strict", "decoded", "unsigned", "0 1", "8", "9", "16", "24",
	"4", "notices all the files", "may not be removed or altered",
	"duplicated in",
)

var copyrightJunkPatterns = compilePatterns(
	`(?i)^copyright \(c\)$`,
	`(?i)^\(c\) by$`,
	`(?i)\(c\) [a-zA-Z][a-z] \(c\)`,
	`(?i)^copyright holder or simply`,
	`(?i)^copyright notice\.`,
	`(?i)^copyright of uc berkeley's berkeley software distribution`,
	`(?i)^and/or the universal copyright convention`,
	`(?i)^attn copyright`,
	`(?i)^\(c\)$`,
	`(?i)^c$`,
	`(?i)^\(c\) any recipient$`,
	`(?i)^\(c\) as$`,
	`(?i)^\(c\),? \(c\)$`,
	`(?i)^\(c\) cockroach enterprise`,
	`(?i)^\(c\) each recipient$`,
	`(?i)^\(c\) forums$`,
	`(?i)^\(c\) if you`,
	`(?i)^\(c\) individual use`,
	`(?i)^code copyright grant`,
	`(?i)^copyright and license, contributing`,
	`(?i)^copyright as is group`,
	`(?i)^copyright \(c\) , and others`,
	`(?i)^copyright-check writable-files m4-check author_mark_check`,
	`(?i)^copyright \(c\) <holders>`,
	`(?i)^copyright copyright and`,
	`(?i)^copyright \(c\) year$`,
	`(?i)^copyright \(c\) year your`,
	`(?i)^copyright, designs and patents`,
	`(?i)copyright \d+ m\. y\.( name)?`,
	`(?i)^copyrighte?d? (by)?$`,
	`(?i)^copyrighted by its$`,
	`(?i)^copyrighted by their authors`,
	`(?i)^copyrighted material, only this license`,
	`(?i)^copyright for a new language`,
	`(?i)^copyright from license`,
	`(?i)^copyright help center`,
	`(?i)^copyright holder and contributors?\.?$`,
	`(?i)^copyright-holder and its contributors$`,
	`(?i)^copyright holder has`,
	`(?i)^copyright holder means`,
	`(?i)^copyright holder who`,
	`(?i)^copyright holder nor`,
	`(?i)^copyright holder,? or`,
	`(?i)^copyright holders and contribut`,
	`(?i)^copyright holder's`,
	`(?i)^copyright holder\(s\) or the author\(s\)`,
	`(?i)^copyright including`,
	`(?i)^copyright in section`,
	`(?i)^copyright john wiley & sons, inc\. year`,
	`(?i)^copyright l?gpl group`,
	`(?i)^copyright, license, and`,
	`(?i)^copyright merged arm`,
	`(?i)^copyright neither`,
	`(?i)^copyright notices, authorship`,
	`(?i)^copyright not limited`,
	`(?i)^copyright owner or`,
	`(?i)^copyright redistributions`,
	`(?i)^copyright the project$`,
	`(?i)^copyright\.? united states$`,
	`(?i)^\(c\) software activation`,
	`(?i)^\(c\) source code`,
	`(?i)^full copyright statement`,
	`(?i)^universal copyright convention`,
	`(?i)^u\.s\. copyright act`,
	`(?i)^\(c\) Object c$`,
	`(?i)^copyright headers?`,
	`(?i)Copyright \(c\) 2021 Dot`,
	`(?i)^\(c\) \(c\) B$`,
	`(?i)^\(c\) group$`,
	`(?i)^\(c\) \(c\) A$`,
	`(?i)^\(c\) the\b`,
	`(?i)^\(c\) if\b`,
	`(?i)^\(c\) for\b`,
	`(?i)^\(c\) to\b`,
	`(?i)^\(c\) one\b`,
	`(?i)^\(c\) all\b`,
	`(?i)^\(c\) allow\b`,
	`(?i)^\(c\) ensure\b`,
	`(?i)^\(c\) permit\b`,
	`(?i)^\(c\) delete\b`,
	`(?i)^\(c\) return\b`,
	`(?i)^\(c\) flag\b`,
	`(?i)^\(c\) charge\b`,
	`(?i)^\(c\) automatically\b`,
	`(?i)^\(c\) completely\b`,
	`(?i)^\(c\) terminate\b`,
	`(?i)^\(c\) suspend\b`,
	`(?i)^\(c\) material\b`,
	`(?i)^\(c\) indemnification\b`,
	`(?i)^\(c\) england\b`,
	`(?i)^\(c\) a$`,
	`(?i)^\(c\) b$`,
	`(?i)^\(c\) c$`,
	`(?i)^\(c\) s$`,
	`(?i)^\(c\) u$`,
	`(?i)^\(c\) this\.`,
	`(?i)^\(c\) nat\d`,
	`(?i)^\(c\) ss+y?$`,
	`(?i)^\(c\) objc`,
	`(?i)^\(c\) \.year`,
	`(?i)^\(c\) case\b`,
	`(?i)^\(c\) offer\b`,
	`(?i)^\(c\) compute\b`,
	`(?i)^\(c\) there\b`,
	`(?i)^\(c\) c printf\b`,
	`(?i)^\(c\) -\d`,
	`(?i)^\(c\) ac$`,
	`(?i)^\(c\) eu$`,
	`(?i)^\(c\) continue\b`,
	`(?i)^\(c\) component\b`,
	`(?i)^\(c\) ext\.`,
	`(?i)^\(c\) assert\.`,
	`(?i)^\(c\) ,\(d\)`,
	`(?i)^copyright notice\b`,
	`(?i)^copyright holders? be\b`,
	`(?i)^copyright holders? and/?or\b`,
	`(?i)^copyright holders?$`,
	`(?i)^copyright holders? shall\b`,
	`(?i)^copyright holder saying\b`,
	`(?i)^copyright holders of\b`,
	`(?i)^copyright holder,$`,
	`(?i)^copyright holder notifies\b`,
	`(?i)^copyright holder is reinstated\b`,
	`(?i)^copyright holder fails\b`,
	`(?i)^copyright holders, but\b`,
	`(?i)^copyright holders, or\b`,
	`(?i)^copyright holders, authors\b`,
	`(?i)^copyright holder\. `,
	`(?i)^copyright holder, author\b`,
	`(?i)^copyright holders? disclaim\b`,
	`(?i)^copyright and has\b`,
	`(?i)^copyright and trademark\b`,
	`(?i)^copyright and other proprietary\b`,
	`(?i)^copyright in the\b`,
	`(?i)^copyright in and\b`,
	`(?i)^copyright the software\b`,
	`(?i)^copyright info for\b`,
	`(?i)^copyright grant\b`,
	`(?i)^copyright terms\b`,
	`(?i)^copyright does\b`,
	`(?i)^copyright unless\b`,
	`(?i)^copyright also\b`,
	`(?i)^copyright are\b`,
	`(?i)^copyright line\b`,
	`(?i)^copyright resulting\b`,
	`(?i)^copyright treaty\b`,
	`(?i)^copyright rights\b`,
	`(?i)^copyright appears?\b`,
	`(?i)^copyright years? updated\b`,
	`(?i)^copyright license\b`,
	`(?i)^copyright copyright\b`,
	`(?i)^copyrights covering\b`,
	`(?i)^copyrights for the\b`,
	`(?i)^copyright for the\b`,
	`(?i)^copyright symbol\b`,
	`(?i)^copyright claim\b`,
	`(?i)^copyright interest\b`,
	`(?i)^copyright shall\b`,
	`(?i)^copyright statement\b`,
	`(?i)^copyright disclaimer\b`,
	`(?i)^copyright permission\b`,
	`(?i)^copyright protection\b`,
	`(?i)^copyright owner\b`,
	`(?i)^copyright yyyy\b`,
	`(?i)^copyright exceptions\b`,
	`(?i)^copyright or patent\b`,
	`(?i)^copyright is claimed\b`,
	`(?i)^copyright messages\b`,
	`(?i)^copyright information\b`,
	`(?i)^copyright at the\b`,
	`(?i)^copyright claimed\b`,
	`(?i)^copyright law\b`,
	`(?i)^copyright page\b`,
	`(?i)^copyright holders? or\b`,
	`(?i)^copyrighted works\b`,
	`(?i)^copyrighted material outside\b`,
	`(?i)^copyright holder as a result\b`,
	`(?i)^copyright holder explicitly\b`,
	`(?i)^copyright holder collectively\b`,
	`(?i)^copyright holder stating\b`,
	`(?i)^copyright holder to enforce\b`,
	`(?i)^copyright holder expressly\b`,
	`(?i)^copyright holder maintains\b`,
	`(?i)^copyright holder may\b`,
	`(?i)^copyright holder is whoever\b`,
	`(?i)^copyright holder, and\b`,
	`(?i)^copyright holder, but\b`,
	`(?i)^copyright holder and seek\b`,
	`(?i)^copyright holder of\b`,
	`(?i)^copyright of\b`,
	`(?i)^copyright or\b`,
	`(?i)^copyright is held by\b`,
	`(?i)^copyright as specified\b`,
	`(?i)^copyrights and patent\b`,
	`(?i)^copyright holder provides\b`,
	`(?i)^copyright holder agrees\b`,
	`(?i)^copyright holder and current maintainer\b`,
	`(?i)^copyright holder,?\s*referring\b`,
	`(?i)\bmaintainer referring to the person\b`,
	`(?i)\bexplicitly and prominently states\b`,
	`(?i)\bm\. y\. name\b`,
	`(?i)^copyrights are property of\b`,
	`(?i)^copyright holder,? we do not list\b`,
	`(?i)^copyright and no-warranty notice\b`,
	`(?i)^copyright pages? of volumes?\b`,
	`(?i)^copyright as is\b`,
	`(?i)^copyright its (contributors|licensors|respective)\b`,
	`(?i)^copyright owned\b`,
	`(?i)^copyright attr\b`,
	`(?i)^copyright content\b`,
	`(?i)^copyright a href\b`,
	`(?i)^copyright designation\b`,
	`(?i)^copyright infringement\b`,
	`(?i)^copyright General Public\b`,
	`(?i)^copyright owners\b`,
	`(?i)^copyright and as\b`,
	`(?i)^copyright applies\b`,
	`(?i)^copyrights of all\b`,
	`(?i)^copyright As I\b`,
	`(?i)^copyright by The Regents\b`,
	`(?i)^copyright by other\b`,
	`(?i)^copyrighted by C\.\b`,
	`(?i)^copyright note\b`,
	`(?i)^copyright clause\b`,
	`(?i)^copyright message\b`,
	`(?i)^copyright below\b`,
	`(?i)^copyright is below\b`,
	`(?i)^copyright date\b`,
	`(?i)^copyright year$`,
	`(?i)^copyright notive\b`,
	`(?i)^copyright inside\b`,
	`(?i)^copyright match\b`,
	`(?i)^copyright notices\b`,
	`(?i)^copyright GNU\b`,
	`(?i)^COPYRIGHT AS PER\b`,
	`(?i)^Copyright and Related Rights\b`,
	`(?i)^copyright by Section\b`,
	`(?i)^Copyright The GNOME\b`,
	`(?i)^Copyright The$`,
	`(?i)^Copyright notices\b`,
	`(?i)^copyright to$`,
	`(?i)^copyrights in$`,
	`(?i)^copyright to the\b`,
	`(?i)^copyrighted \(with\b`,
	`(?i)^\(Copyright notice\)`,
	`(?i)^COPYRIGHT HOLDER ALLOWS\b`,
	`(?i)^copyright holders?,? disclaims?\b`,
	`(?i)\bwe do not list the\b`,
	`(?i)\bno-warranty notice unaltered\b`,
	`(?i)\bprovides the program as\b`,
	`(?i)\breferring to the person\b`,
	`(?i)\bderivatives of$`,
	`(?i)^copyright in$`,
	`(?i)^copyright and other$`,
	`(?i)\bline and a pointer to where\b`,
	`(?i)\binterest in the program\b`,
	`(?i)\binterest in the library\b`,
	`(?i)\bhas no obligation to provide maintenance\b`,
	`(?i)^be liable to\b`,
	`(?i)\bthe respective terms and conditions\b`,
	`(?i)\bthe terms and conditions of the copyright\b`,
	`(?i)\bwho places the library\b`,
	`(?i)\bthe library among them\b`,
	`(?i)\bdisclaimer for the library\b`,
	`(?i)\bprofile authors\s+@remark`,
	`(?i)\banybody can make use of my programs\b`,
	`(?i)\bof computers and typesetting\b`,
	`(?i)^copyright the library,?$`,
	`(?i)^\(c\) endif$`,
	`(?i)^endif$`,
	`(?i)^\(c\) \?$`,
	`(?i)^\(c\) [a-z]$`,
	`(?i)^[a-z]$`,
	`(?i)^\(c\) [a-z] [a-z]$`,
	`(?i)^[a-z] [a-z]$`,
	`(?i)^\(c\) ISLOWER$`,
	`(?i)^ISLOWER$`,
	`(?i)^\(c\) - [a-z]$`,
	`(?i)^0$`,
	`(?i)^\(c\) 0$`,
	`(?i)^Copyright \(c\) \d{4}$`,
	`(?i)^Copyright \d{4}$`,
	`(?i)^\(c\) \d{4}$`,
	`(?i)^year\(\d{4}\)\.format\b`,
	`(?i)^SSY$`,
	`(?i)^Object$`,
	// "Copyright Holder as/to/the" boilerplate
	`(?i)^copyright holder as specified\b`,
	`(?i)^copyright holder to\b`,
	`(?i)^copyright holder,? the\b`,
	`(?i)^copyrights as noted\b`,
	`(?i)^COPYRIGHT DOCUMENTATION\b`,
	`(?i)^COPYRIGHT STATEMENTS\b`,
	`(?i)^copyright and other intellectual\b`,
	`(?i)^copyright treaties\b`,
	// (c) followed by code-like constructs
	`(?i)^\(c\) [\!\?&\|\.;:,\+\-\*/<>=]`,
	`(?i)^\(c\) [\w]+\.\w+\(`,
	`(?i)^\(c\) [\w]+\[`,
	`(?i)^\(c\) &&`,
	`(?i)^\(c\) \|\|`,
	`(?i)^\(c\) [\w]+\?`,
	`(?i)^\(c\) [\w]+\.[\w]+\.`,
	`(?i)^\(c\) [\w]+\([\w,]+\)`,
	// (c) followed by short gibberish (1-3 mixed-case chars) from binary data
	`^\(c\) [A-Z][a-z]{1,2}$`,
	// (c) followed by "Unknown" (binary/PDF artifacts)
	`(?i)^\(c\) Unknown\b`,
	// (c) followed by binary/garbled data patterns
	`^\(c\) [^\x20-\x7E]`,
	`^\(c\) [\x00-\x1F]`,
	`^\(c\) [A-Z][a-z]+ d [A-Z][a-z]+$`,
	`^\(c\) [A-Z]{2,}[0-9]`,
	`^\(c\) [a-z]{1,3}$`,
	// (c) followed by C code patterns
	`(?i)^\(c\) c -`,
	`(?i)^\(c\) c TOUPPER`,
	`(?i)^\(c\) isascii`,
	`(?i)^\(c\) isupper`,
	`(?i)^\(c\) isdigit`,
	`(?i)^\(c\) isalnum`,
	`(?i)^\(c\) isalpha`,
	`(?i)^\(c\) isspace`,
	`(?i)^\(c\) iscntrl`,
	`(?i)^\(c\) isprint`,
	`(?i)^\(c\) ifdef`,
	`(?i)^\(c\) undef\b`,
	`(?i)^\(c\) endif\b`,
	`(?i)^\(c\) sgn\b`,
	`(?i)^\(c\) dst`,
	`(?i)^\(c\) ptr\b`,
	`(?i)^\(c\) slen\b`,
	`(?i)^\(c\) len\b`,
	`(?i)^\(c\) do$`,
	`(?i)^\(c\) uint`,
	`(?i)^\(c\) gunichar\b`,
	`(?i)^\(c\) TRUE FALSE`,
	`(?i)^\(c\) yyunput\b`,
	`(?i)^\(c\) yylval\b`,
	`(?i)^\(c\) ungetc\b`,
	`(?i)^\(c\) 0x[0-9a-fA-F]`,
	`(?i)^\(c\) \(\(unsigned`,
	`(?i)^\(c\) \(int\)`,
	`(?i)^\(c\) \(uint`,
	`(?i)^\(c\) \(s\)`,
	`(?i)^\(c\) \d+ \(\(`, // "(c) 16 ((d) 24)"
	`(?i)^\(c\) \d+ &`, // "(c) 6 (trail&0x3f)"
	`(?i)^\(c\) strict\b`,
	`(?i)^\(c\) width\b`,
	`(?i)^\(c\) arg\b`,
	`(?i)^\(c\) cindex\b`,
	`(?i)^\(c\) foot-`,
	`(?i)^\(c\) put\b`,
	`(?i)^\(c\) DEBUGP\b`,
	`(?i)^\(c\) Chain\b`,
	`(?i)^\(c\) Only\b`,
	`(?i)^\(c\) Walked\b`,
	`(?i)^\(c\) Construct\b`,
	`(?i)^\(c\) p can\b`,
	`(?i)^\(c\) c\.warn\b`,
	`(?i)^\(c\) b\.status\b`,
	`(?i)^\(c\) table\.set\b`,
	`(?i)^\(c\) in$`,
	`(?i)^\(c\) macro\b`,
	`(?i)^\(c\) decoded\b`,
	`(?i)^\(c\) IP_VS`,
	`(?i)^\(c\) Like\b`,
	`(?i)^\(c\) Page\b`,
	`(?i)^\(c\) WITH\b`,
	`(?i)^\(c\) \(1\b`,
	`(?i)^\(c\) \(2\)`,
	`(?i)^\(c\) \(MON\b`,
	`(?i)^\(c\) M this\b`,
	`(?i)^\(c\) \(0,`,
	// (c) followed by PDF/PostScript artifacts
	`(?i)^\(c\) Tj\b`,
	`(?i)^\(c\) ET\b`,
	`(?i)^\(c\) Registered$`,
	// (c) followed by garbled/encoded text
	`^\(c\) uL`,
	`^\(c\) [¡¢£¤¥¦§¨©ª«¬®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿ]`,
	`^\(c\) .*ÿÿÿ`,
	`^\(c\) .*°°°`,
	// (c) followed by license/legal boilerplate
	`(?i)^\(c\) Inclusion\b`,
	`(?i)^\(c\) Whenever\b`,
	`(?i)^\(c\) Customer`,
	`(?i)^\(c\) Splunk\b`,
	`(?i)^\(c\) No$`,
	`(?i)^\(c\) CockroachDB\b`,
	`(?i)^\(c\) Custom Nessus\b`,
	`(?i)^\(c\) Products\.`,
	`(?i)^\(c\) \x{201c}`, // left double quotation mark
	// (c) followed by number-only patterns (not years)
	`^\(c\) \d{1,2}$`,
	`^\(c\) \d+ \d+ y\b`,
	// (c) followed by PostScript/font data
	`(?i)^\(c\) SS'`,
	`(?i)^\(c\) PSPSY`,
	`(?i)^\(c\) PSY$`,
	`(?i)^\(c\) a! `,
	`(?i)^\(c\) aae\b`,
	`(?i)^\(c\) \(r\)`,
	`(?i)^\(c\) D'O\b`,
	`(?i)^\(c\) AT r'b`,
	`(?i)^\(c\) C,BLACK`,
	`(?i)^\(c\) hUja\b`,
	`(?i)^\(c\) NULL$`,
	`(?i)^\(c\) cc\.fr`,
	`(?i)^\(c\) Oo2\b`,
	`(?i)^\(c\) UOSSOO`,
	`(?i)^\(c\) q ltd`,
	`(?i)^\(c\) zbar`,
	`(?i)^\(c\) distributed$`,
	`(?i)^\(c\) \(tm\)`,
	`(?i)^\(c\) ,\s*,`,
	`(?i)^\(c\) notice\b`,
	`(?i)^\(c\) create\b`,
	`(?i)^\(c\) do not\b`,
	`(?i)^\(c\) give\b`,
	`(?i)^copyright logo\b`,
	`(?i)^copyright targetpath\b`,
	`(?i)^copyright \(xmlns\b`,
	`(?i)^copyright its authors\b`,
	`(?i)^\(copyright\s*\)\b`,
	`(?i)^copyright the product\b`,
	`(?i)^copyright year\b.*\bfor\b`,
	`(?i)^copyrights? and licenses\b`,
	`(?i)^copyright applied to\b`,
	`(?i)^copyrighted material,\b`,
	`(?i)^copyright is\b`,
	`(?i)^\(c\) of the\b`,
	`(?i)^\(c\) other$`,
	`(?i)^\(c\) dates of\b`,
	`(?i)^\(c\) improved syntax\b`,
	`(?i)^\(c\),?\s*,`,
	`(?i)^\(c\),?\s*group\b`,
	`(?i)^\(c\),?\s*count\b`,
	`(?i)^\(c\),?\s*b\s`,
	`(?i)^\(c\),?\s*c$`,
	`(?i)^copyright act\b`,
	`(?i)^copyright for$`,
	`(?i)^copyright holder for the\b`,
	`(?i)^copyright man page\b`,
	`(?i)^copyright s status\b`,
	`(?i)^copyright and things like\b`,
	`(?i)^copyrights cover\b`,
	`(?i)^copyrights in the original\b`,
	`(?i)^copyrights in the portions\b`,
	`(?i)^copyrighted$`,
	`(?i)^copyright tue\b`,
	`(?i)^copyright sign\b`,
	`(?i)^c.opylefted\b`,
	`(?i)^i\.\s*\(c\)\b`,
	`(?i)^u1e\s*\(c\)\b`,
	`(?i)^xz\b.*\(c\)\b`,
	`^\(c\) [A-Z]{3,}[a-z]{1,3}$`,
	`^\(c\) [A-Z][a-z][A-Z][a-z]`,
	`^\(c\) [A-Z]{2}[a-z][A-Z]`,
	`^\(c\) [A-Z][A-Z][a-z][a-z][a-z]?[A-Z]`,
	`(?i)^copyright info have been\b`,
	`(?i)^\(copyright\s*\)\s*gnu general\b`,
	`(?i)^\(copyright\b.*\bvoltagefactor\b`,
	`(?i)^\(copyright unasserted\)\b`,
	`(?i)^copyright the lavantech\b`,
	`(?i)^copyright year united states\b`,
	`(?i)^copyright 1991-\d+ imatix\b.*\bwith exception\b`,
	`(?i)^\(c\) io\\0`,
	`(?i)^\(c\) ecfieldelement\b`,
	`(?i)^\(c\) distributed\b`,
	`(?i)^\(c\) yyyy\b`,
	`(?i)^\(c\) rebel\b`,
	`(?i)^\(c\) metastuff\b`,
	`(?i)^\(c\) mihai\b`,
	`(?i)^\(c\) linux foundation\b.*\bunified\b`,
	`(?i)^\(c\) helge deller\b.*\bcopyright\b`,
	`(?i)^\(c\) hewlett-packard company$`,
	`(?i)^copyright \(c\) david j\. bradshaw$`,
	`(?i)^copyright \(c\) tim ruffles$`,
	`(?i)^copyright \(c\) gias kay lee$`,
	`(?i)^copyright \(c\) xerox corporation$`,
	`(?i)^copyright -+\s*copyright\b`,
	`(?i)^copyright \x{fffd}`,
	`(?i)^\x{fffd}\d+-\d+\b`,
	`(?i)^nexb and others\b`,
	`(?i)^copyright \x{a9}\d`,
	`(?i)^copyrighted material,? only\b`,
	`(?i)^copyrights of the\b`,
	`(?i)^\(c\) p b i n do$`,
	`(?i)^\(c\) 2004-2009 pudn\.com\b`,
	`(?i)^.{1,5}\s*\(c\)\s*.{1,5}$`,
	`(?i)^swfobject\b.*\bcopyright\b`,
	`(?i)^the the oscar\b`,
	`(?i)^\(c\) 2004-2010$`,
	`(?i)^\(c\) 1997 m\. kirkwood converted\b`,
	`(?i)^\(c\) 1998 red hat tcp\b`,
	`(?i)^\(c\) 1999 david airlie\b.*\bbugfixes\b`,
	`(?i)^\(c\) 1998-2002 by heiko eissfeldt\b`,
	`(?i)^\(c\) 2001 dave jones\b`,
	`(?i)^\(c\) 2003-2004 paul clements\b`,
	`(?i)^\(c\) 2014-\$$`,
	`(?i)^copyright 2014-\$$`,
	`(?i)^copyright 2010 ben dooks fluff\b`,
	`(?i)^\(c\)\s*(indir|then|unacceptable)\b`,
	`(?i)^\(c\) c arg\b`,
	`(?i)^\(c\) @ ?(symrec|ungetc|yylval)\b`,
	`(?i)^\(c\) \(the parens\b`,
	`(?i)^\(c\) s-\d`,
	`(?i)^\(c\) register\b`,
	`(?i)^\(c\) Mouse Wheel\b`,
	`(?i)^copyright info$`,
	`(?i)^copyright for a\b`,
	`(?i)^COPYRIGHT HOLDERS AS\b`,
	`(?i)@remark Read`,
	`(?i)\bContact <\w+@\w+`,
	`(?i)^\d{1,2}$`,
	`(?i)^\(c\) yyunput\b`,
	`(?i)^\(c\) yylval\b`,
	`(?i)^IsLower\s*\(c\)\s*IsDigit\b`,
	`(?i)^copyright \d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}\b`,
	`(?i)^Copyright \d{4}-\d{4}$`,
	`(?i)^Copyright \(c\) \d{4}-\d{4}$`,
	`(?i)^Copyright \(c\) \d{4} Contributors$`,
	`(?i)^ds Status works\b`,
	`(?i)^Copyright \(c\) The team$`,
	`(?i)^holder\.\s*AS\b`,
	`(?i)^as\(c,\s*field\b`,
	`(?i)^skb\.\s*The buffer\b`,
	`(?i)^partial mlock\b`,
	// (c) followed by C variable/type patterns
	`(?i)^\(c\) (unsigned|int|char|void|long|short|float|double|static|struct)\b`,
	`(?i)^\(c\) (classify|ctable|cvPoint|fWidth|macroptr|MAGIC)\b`,
	`(?i)^\(c\) (letters|ok letters)\b`,
	`(?i)^\(c\) (res|ret|run|save|sizeof|temp)\b`,
	`(?i)^\(c\) (flags|buffer|buflen)\b`,
	`(?i)^\(c\) (pr |prec |printf )\b`,
	`(?i)^\(c\) (Accumulate|Bit8u|Returns the|SkReplicate)\b`,
	`(?i)^\(c\) (asm|xlp|we copy)\b`,
	`(?i)^\(c\) (d \d|num \d|mat \d)\b`,
	`(?i)^\(c\) do (prec|while)\b`,
	`(?i)^\(c\) etc\b`,
	`(?i)^\(c\) Finn Thain\b.*\bCopying\b`,
	`(?i)^\(c\) Kasım\b`,
	`(?i)^\(c\) z \?$`,
	`(?i)^\(c\) Z \?$`,
	`(?i)^\(c\) \d+ \+0x`,
	`(?i)^\(c\) \d+ static\b`,
	`(?i)^\(c\) 0-9`,
	`(?i)^\(c\) 122$`,
	`(?i)^\(c\) \d+ endif\b`,
	`(?i)^\(c\) \(c&`,
	`(?i)^\(c\) \(cp\)`,
	`(?i)^\(c\) \( cp\)`,
	`(?i)^\(c\) \(l\)`,
	`(?i)^\(c\) \(out\.\b`,
	`(?i)^\(c\) \(run\)`,
	`(?i)^\(c\) \(scale\b`,
	`(?i)^\(c\) \^ \(`,
	`(?i)^\(c\) \(DBus`,
	`(?i)^\(c\) c c c\b`,
	`(?i)^\(c\) c toascii\b`,
	`(?i)^\(c\) c tolower\b`,
	`(?i)^\(c\) c \(qbuf\b`,
	`(?i)^\(c\) c / endif\b`,
	`(?i)^\(c\) c \^ 0x`,
	`(?i)^\(c\) c 03o\b`,
	`(?i)^\(c\) c 0x\d`,
	`(?i)^\(c\) this-\b`,
	`(?i)^\(c\) putchar\b`,
	// (c) followed by year + trailing junk
	`(?i)^\(c\) \d{4}(-\d{4})? Jean-loup Gailly\b.*\b(END|VALUE)\b`,
	`(?i)^\(c\) \d{4}(-\d{4})? Julian Seward\b.*\btitle\b`,
	`(?i)^\(c\) \d{4} Paul Rusty Russell\b.*\bPlaced\b`,
	`(?i)^\(c\) \d{4} Dan Potter\b.*\bmodify\b`,
	`(?i)^\(c\) \d{4} Red Hat\.\s*GPLd\b`,
	`(?i)^\(c\) \d{4}-\d{4}$`,
	`(?i)^\(c\) \d{4} Andreas Gruenbacher\b.*\bgruenbacher@\b`,
	`(?i)^\(c\) \d{4},?\s*\d{4},?\s*\d{4} Thomas Vander Stichele\b`,
	`(?i)^\(c\) \d{4} Adam Nielsen\b.*\bniel?sen@\b`,
	`(?i)^\(c\) \d+ \(trail`,
	`(?i)^\(c\) 4\+\(r\)`,
	// copyright followed by non-copyright text
	`(?i)^copyright :G2P\b`,
	`(?i)^copyright \d+ trademark\b`,
	`(?i)^copyright 60$`,
	`(?i)^copyright ACM and IEEE\b`,
	`(?i)^copyright and placed into\b`,
	`(?i)^copyright and to distribute\b`,
	`(?i)^copyright as follows\b`,
	`(?i)^copyright definedummyword\b`,
	`(?i)^copyright FILE\b`,
	`(?i)^copyright info to be\b`,
	`(?i)^copyright mea-\b`,
	`(?i)^copyright meta-\b`,
	`(?i)^copyright others$`,
	`(?i)^copyright problem,?\b`,
	`(?i)^copyright SGI\b`,
	`(?i)^copyright to help\b`,
	`(?i)^copyright year to\b`,
	`(?i)^copyrighted - provided\b`,
	`(?i)^copyrighted by the following\b`,
	`(?i)^copyrighted work\b`,
	`(?i)^copyrights apply\b`,
	`(?i)^copyrights to use\b`,
	// Non-copyright holder-like strings that are false positives
	`(?i)^count count\b`,
	`(?i)^const char\b`,
	`(?i)^int\s`,
	`(?i)^int$`,
	`(?i)^lack of warranty\b`,
	`(?i)^macro for checking\b`,
	`(?i)^mat \d\b`,
	`(?i)^MD5Update\b`,
	`(?i)^message$`,
	`(?i)^Nuance Communications,? but\b`,
	`(?i)^NULL,? \d`,
	`(?i)^placed into PD\b`,
	`(?i)^preserved in its entirety\b`,
	`(?i)^Protocol Engineering Lab\b`,
	`(?i)^ptr$`,
	`(?i)^Regents of the University\b.*\bBerkeley Software\b`,
	`(?i)^res$`,
	`(?i)^ret$`,
	`(?i)^run$`,
	`(?i)^sgn$`,
	`(?i)^sizeof$`,
	`(?i)^SIGN\(b\)`,
	`(?i)^strict forbid\b`,
	`(?i)^terms and conditions$`,
	`(?i)^toascii$`,
	`(?i)^tolower$`,
	`(?i)^trademark acute\b`,
	`(?i)^TRADEMARK \d+NOTICES\b`,
	`(?i)^true$`,
	`(?i)^unacceptable$`,
	`(?i)^unsigned\s+(char|int|long|short|b|g|r|sb|sg)\b`,
	`(?i)^we copy data\b`,
	`(?i)^work$`,
	`(?i)^wide$`,
	`(?i)^joint with$`,
	`^others$`,
	`(?i)^symbol,? for example\b`,
	`(?i)^the shared library will be\b`,
	`(?i)^SkReplicateNibble\b`,
	`(?i)^Returns the (multiplicative|product)\b`,
	`(?i)^Walked too far\b`,
	`(?i)^xlp xep\b`,
	`(?i)^yyunput\b`,
	`(?i)^yylval\b`,
	`(?i)^\?1:0$`,
	`(?i)^\(\(DBus`,
	`(?i)^\(unsigned char\)`,
	`(?i)^16 \(\(d\)\b`,
	`(?i)^l \(unsigned\b`,
	`(?i)^\(\(unsigned\b`,
	// ICS false positive copyrights
	`(?i)^\(c\) \(unsigned int\)`,
	`(?i)^\(c\) A &&`,
	`(?i)^\(c\) a &&`,
	`(?i)^COPYRIGHT undef\b`,
	`(?i)^\(c\) \(\(DBusCondVar`,
	`(?i)^\(c\) s-$`,
	`(?i)^\(c\) A1$`,
	`(?i)^\(c\) this-\s*set\w+\b`,
	`(?i)^\(c\) \(unsigned\)$`,
	`(?i)^COPYRIGHT CREDITS\b`,
	`(?i)^COPYRIGHT HOLDERS,?\s*AND/OR\b`,
	`(?i)^COPYRIGHT exploring\b`,
	`(?i)^Copyright,?\s*lack of warranty\b`,
	`(?i)^COPYRIGHT const char\b`,
	`(?i)^copyright const char\b`,
	`(?i)^copyright mea-\s*setOffset\b`,
	`(?i)^copyright meta-\s*registerClass\b`,
	`(?i)^\(c\) \(unsigned char\)\(`,
	`(?i)^\(c\) \d+L$`,
	`(?i)^\(c\) cvPoint3D32f$`,
	`(?i)^\(c\) temp3$`,
	`(?i)^http://\S+\s+Copyright\b`,
	`(?i)^Foundation Copyright\b`,
	`(?i)^http://sizzlejs\b`,
	`(?i)^\(c\) \(unsigned char\)$`,
	`(?i)@remark Read`,
	`(?i)\bWritten by\b`,
	`(?i)\bcontributors Thomas Broyer\b`,
	`(?i), and are$`,
	// Garbled/binary data patterns (junk-copyright-* tests)
	`^\(c\) Io\\0`,
	`^\(c\) AaeaMOOAA\d`,
	`^\(c\) EEIaeIaAAOAE`,
	`^\(c\) AaACEEeUB`,
	`^\(c\) AIuaey`,
	`^\(c\) ATo\b`,
	`^\(c\) U Q\d`,
	`^\(c\) Vo\b.*\bAoa\b`,
	`^\(c\) Y Rd$`,
	`^\(c\) YY ThQ`,
	`^\(c\) ZIgd\d`,
	`^\(c\) OCOthDTh`,
	`^\(c\) IoUOi`,
	`^\(c\) OthO$`,
	`^\(c\) ErXA\d`,
	`(?i)^\(c\) Dean$`,
	`(?i)^Copyright \(c\) The team$`,
	`^\(c\) 1 \?\d`,
	`^\(c\) 34 b$`,
	`^\(c\) A - 10 a - 10$`,
	`(?i)^\(c\) AS z$`,
	// French legal text fragments
	`(?i)^\(c\) dig[ÃA]`,
	`(?i)^\(c\) que le pr[ÃA]`,
	`(?i)^\(c\) s en anglais`,
	`(?i)^\(c\) sent contrat\b`,
	// Garbled text with (c) in middle
	`(?i)^Xz\b.*\(c\)\s*Ijr`,
	// Binary data from image files
	`^\(c\) [^\x20-\x7e]{2}`,
	`(?i)^COPYRIGHT AS$`,
	`^\(c\) E QuGU`,
	`^\(c\) YY$`,
	// (c) followed by non-ASCII byte (binary garbage from image/font files)
	`^\(c\) [a-zA-Z]{1,3}[\x00-\x1f\x80-\xff]`,
	`[\x00-\x08]`,
)

// IsJunkCopyright reports whether s matches a known false-positive
// copyright detection, so a parser can drop it before calling
// RefineCopyright at all.
func IsJunkCopyright(s string) bool {
	return matchesAny(copyrightJunkPatterns, s)
}

var holderJunkPatterns = compilePatterns(
	`(?i)\bliable for\b`,
	`(?i)\bappear in all copies\b`,
	`(?i)\bdisclaimer of warranty\b`,
	`(?i)\bdisclaimer for the program\b`,
	`(?i)\bit may be distributed\b`,
	`(?i)\bwho places the program\b`,
	`(?i)\bkeep intact all the\b`,
	`(?i)\bshall not be used in advertising\b`,
	`(?i)\bpromote the sale\b`,
	`(?i)\bpromote products derived\b`,
	`(?i)\bother dealings in\b`,
	`(?i)\bhas been advised of the possibility\b`,
	`(?i)\bfailure of essential purpose\b`,
	`(?i)\bthe licenses? granted in\b`,
	`(?i)\bcovering the original code\b`,
	`(?i)\bwithout notice from apple\b`,
	`(?i)\bcompletely and accurately document\b`,
	`(?i)\bother proprietary\b`,
	`(?i)\bpatent rights?\b`,
	`(?i)\bincluding.{0,10}but not limited\b`,
	`(?i)\bincluding your\b`,
	`(?i)\bincluding the\b`,
	`(?i)\bcopyrighted material\b`,
	`(?i)\bselected patent\b`,
	`(?i)\bin the work\b`,
	`(?i)\bin the document\b`,
	`(?i)\bthe original work\b`,
	`(?i)\bpermit and encourage\b`,
	`(?i)\bpermitted copying\b`,
	`(?i)\bto do the following\b`,
	`(?i)\bas a result of\b`,
	`(?i)\breinstated permanently\b`,
	`(?i)\breinstated\b`,
	`(?i)\bexplicitly and finally terminates\b`,
	`(?i)\bfails to notify\b`,
	`(?i)\bnotifies\b`,
	`(?i)\bthe above\b`,
	`(?i)\bthe software,?$`,
	`(?i)\bsuspend your rights\b`,
	`(?i)\bderivative works\b`,
	`(?i)\bpublicly display\b`,
	`(?i)\bpublicly perform\b`,
	`(?i)\bof competent jurisdiction\b`,
	`(?i)\bexceptions and limitations\b`,
	`(?i)\bfair use\b`,
	`(?i)\bfair dealing\b`,
	`(?i)\btreaty adopted\b`,
	`(?i)\breflecting the\b`,
	`(?i)\bappears? in\b`,
	`(?i)\bsaying\b.*\bdistributed\b`,
	`(?i)\bif the item a binary\b`,
	`(?i)\bone digital image or graphic\b`,
	`(?i)\bperceptible, measurable\b`,
	`(?i)\bthe entire\b`,
	`(?i)\bsemblance of artistic control\b`,
	`(?i)\bcommercially reasonable efforts\b`,
	`(?i)\bto endorse or promote\b`,
	`(?i)\bimmediately at the beginning\b`,
	`(?i)\bunmodified\b`,
	`(?i)\beasier identification\b`,
	`(?i)\b(l?gpl|lgpl) group\b`,
	`(?i)^symbol in\b`,
	`(?i)^trademark$`,
	`(?i)^printf\b`,
	`(?i)^the top level of\b`,
	`(?i)^the following\b`,
	`(?i)^the resulting\b`,
	`(?i)^whoever named in\b`,
	`(?i)^as specified below\b`,
	`(?i)^not used to limit\b`,
	`(?i)^the coordinator$`,
	`(?i)^provided\b`,
	`(?i)^provides the work\b`,
	`(?i)\bthis\.[a-zA-Z]`,
	`(?i):function\b`,
	`(?i)\bm\. y\. name\b`,
	`(?i)^version of nameif\b`,
	`(?i)\bunless explicitly identified\b`,
	`(?i)^version 3 of the$`,
	// Holder false positives from license boilerplate
	`(?i)\b(if any) with\b`,
	`(?i)^(d),\b`,
	`(?i)\bas a market\b`,
	`(?i)\bprocedures\b`,
	`(?i)\bcollectively\b`,
	`(?i)\bgiving your\b`,
	`(?i)\bspecified addresses\b`,
	`(?i)^the base\b`,
	`(?i)^the library\b`,
	`(?i)\bthe library,\b`,
	`(?i)\bthe library among\b`,
	`(?i)\breferences to\b`,
	`(?i)\bstating\b.*\bdistributed\b`,
	`(?i)^terminate\b`,
	`(?i)\beffective immediately\b`,
	`(?i)^keep intact\b`,
	`(?i)^material outside\b`,
	`(?i)\bsaying\b`,
	// Trailing legal text patterns
	`(?i)\bdistributed under\b`,
	`(?i)\blicensed under\b`,
	`(?i)\bthe terms\b.*\blicense\b`,
	`(?i)\bthe standard version\b`,
	// Code-like patterns in holders
	`(?i)\bif\s*\(`,
	`(?i)\bfunction\s*\(`,
	`(?i)\breturn\b.*\bfunction\b`,
	`(?i)\bvar\s+\w`,
	`(?i)\bthis\.\w+\(`,
	// Trailing text patterns in holders
	`(?i)\bCredited\b`,
	`(?i)\bConverted to\b`,
	`(?i)\breworked by\b`,
	`(?i)\bVarious bits\b`,
	`(?i)\bCopying and distribution\b`,
	`(?i)\bGPLd\b`,
	`(?i)\bLicense-Alias\b`,
	`(?i)\bcontributors Thomas\b`,
	`(?i)\bWritten by\b`,
	`(?i)\bModified by the\b`,
	`(?i)\btitle Legal\b`,
	`(?i)\bContact <`,
	`(?i)\b- Placed\b`,
	`(?i)\bUnder the terms\b`,
	`(?i)\binfo have been\b`,
	`(?i)\bAuthors Havoc\b`,
	`(?i)\bicon support\b`,
	`(?i)\bmaintainer Paolo\b`,
	`(?i)\bfull list\b`,
	`(?i)\bSTATEMENTS AND\b`,
	`(?i)\bAS IS$`,
	`(?i)\bAS IS CONDITION\b`,
	`(?i)\bNOTICES OR THIS\b`,
	`(?i)\bDOCUMENTATION ISC\b`,
	`(?i)\bpixmaps svg\b`,
	`(?i)\bFull text of\b`,
	`(?i)\btransferred to Nokia\b`,
	`(?i)\bAS PER APPLICABLE\b`,
	`(?i)\bSection 105\b`,
	`(?i)\bGNU AGPL\b`,
	`(?i)\bTenable licenses\b`,
	`(?i)\bagreement with the\b`,
	`(?i)\bgives Customer\b`,
	`(?i)\bshall mean\b`,
	`(?i)\bEnterprise Edition\b`,
	`(?i)\bContributing Authors\b`,
	`(?i)\bAll Downstream\b`,
	`(?i)\bSource Code to\b`,
	`(?i)\bPROTECTION AND IS\b`,
	`(?i)\bnot removed\b`,
	`(?i)\bthe GPSD project\b`,
	`(?i)\bversion 3\.1 of\b`,
	`(?i)\bGPL version\b`,
	`(?i)\bCopyright/g\b`,
	`(?i)\bdata/c\.m4\b`,
	`(?i)\binside so it\b`,
	`(?i)\bmatch standard format\b`,
	`(?i)\bin each output\b`,
	`(?i)\bstr::npos\b`,
	`(?i)\btimes in xrange\b`,
	`(?i)\bin zlib\.h\b`,
	`(?i)\ball paragraphs\b`,
	`(?i)\buse, copy, modify\b`,
	`(?i)\bdistribute it with\b`,
	`(?i)\bother intellectual property\b`,
	`(?i)\btreaties\. Title\b`,
	`(?i)\bexempting the\b`,
	`(?i)\bwith exception of\b`,
	`(?i)\bas noted in the\b`,
	`(?i)\bThe Product is\b`,
	`(?i)\bThe arguments as\b`,
	`(?i)\bpertaining to distribution\b`,
	`(?i)\bVERBATIM\b`,
	`(?i)\bintact$`,
	`(?i)\binformation\.\b`,
	`(?i)\bdoing$`,
	`(?i)^holders,? but\b`,
	`(?i)^its author\b`,
	`(?i)^in its\b`,
	`(?i)^in the\b`,
	`(?i)^offer\b`,
	`(?i)^copy the\b`,
	`(?i)^owned by\b`,
	`(?i)^the team$`,
	`(?i)^the project$`,
	`(?i)^the republic of\b`,
	`(?i)^the google\b`,
	`(?i)^the jetty\b`,
	`(?i)^the acknowledgment\b`,
	`(?i)^the combination of\b`,
	`(?i)^the lavantech\b`,
	`(?i)^all source code\b`,
	`(?i)^all translated\b`,
	`(?i)^all the rich\b`,
	`(?i)^author,? or contributor\b`,
	`(?i)^authors,? and contributors\b`,
	`(?i)^its authors\b`,
	`(?i)^its cell\b`,
	`(?i)^automatically without\b`,
	`(?i)^more information\b`,
	`(?i)^infringement can\b`,
	`(?i)^header of\b`,
	`(?i)^const (group|projects)\b`,
	`(?i)^there clear\b`,
	`(?i)^things like\b`,
	`(?i)^custom nessus\b`,
	`(?i)^whenever reasonably\b`,
	`(?i)^united states government as represented\b`,
	`(?i)^gnu general\b`,
	`(?i)^general public\b`,
	`(?i)^man page\b`,
	`(?i)^merged arm\b`,
	`(?i)^tcl/tk policy\b`,
	`(?i)^in license\b`,
	`(?i)^law,? \b`,
	`(?i)^license,? to the\b`,
	`(?i)^s status\b`,
	`(?i)^as i developed\b`,
	`(?i)^improved syntax\b`,
	`(?i)^inclusion in\b`,
	`(?i)^disclaim all\b`,
	`(?i)^directly copied\b`,
	`(?i)^as found in\b`,
	`(?i)^years updated\b`,
	`(?i)\bcontrol over the development\b`,
	`(?i)\bartistic control\b`,
	`(?i)\bcompilation not used to limit\b`,
	`(?i)\blegal rights of the compilation\b`,
	`(?i)\bindividual works permit\b`,
	`(?i)\bDocument included in\b`,
	`(?i)\blocated in .* and .* located in\b`,
	`(?i)\binternational treaty\b`,
	`(?i)\bapplicable$`,
	`(?i)\bcontrat et tous\b`,
	`(?i)\ben anglais\b`,
	`(?i)\bdocuments connexes\b`,
	`(?i)^seek a different\b`,
	`(?i)^sign so\b`,
	`(?i)^like sta\b`,
	`(?i)^page i/o\b`,
	`(?i)^\(mon tue\b`,
	`(?i)^gt\. zero\b`,
	`(?i)^with recursive\b`,
	`(?i)^ecfieldelement\b`,
	`(?i)^setresultsname\b`,
	`(?i)^semanticdirection\b`,
	`(?i)^content ssense\b`,
	`(?i)^attr value\b`,
	`(?i)^match\(ident\)\b`,
	`(?i)^assert\.equal\b`,
	`(?i)^h\.matches\b`,
	`(?i)^bd\(b\.\b`,
	`(?i)^b\(an\)\d`,
	`(?i)^b\(ase\b`,
	`(?i)^b\(onstant\b`,
	`(?i)^g\(al\)\b`,
	`(?i)^y fj\b`,
	`(?i)^y fp\b`,
	`(?i)^u r\(\d`,
	`(?i)^u q\d`,
	`(?i)^y rd\b`,
	`(?i)^y aey\b`,
	`(?i)^as z$`,
	`(?i)^i\. uao\b`,
	`(?i)^e qugu\b`,
	`(?i)^bj d\b`,
	`(?i)^cj d\b`,
	`(?i)^dj d\b`,
	`(?i)^jj d\b`,
	`(?i)^objc,? bp\b`,
	`(?i)^10 a - 10$`,
	`(?i)^b a, b$`,
	`(?i)^unknown [a-z]{1,3}$`,
	`(?i)^unknown [a-z]\d\b`,
	`(?i)^[a-z]{1,2} [a-z]{1,2}$`,
	`(?i)^ato\b.*\bae\b`,
	`(?i)^xz\b.*\bijr\b`,
	`(?i)^zigd\d\b`,
	`(?i)^yy thq\b`,
	`(?i)^ss'ss`,
	`(?i)^pspsy\b`,
	`(?i)^oo2\b`,
	`(?i)^c/ps\b`,
	`(?i)^cn:class\b`,
	`(?i)^c2001\b`,
	`(?i)^ocoo\b`,
	`(?i)^a!\b`,
	`(?i)^aae\b`,
	`(?i)^a\(r\)\b`,
	`(?i)^deg,?\b.*deg\b`,
	`(?i)^cii1/4\b`,
	`(?i)^vo u\d`,
	`(?i)^ul\b`,
	`(?i)^xl\b`,
	`(?i)^wl\b`,
	`(?i)^crarr\b`,
	`(?i)^x\$\?\b`,
	`(?i)^e\$\?\b`,
	`(?i)^length\?null\b`,
	`(?i)^c\.warn\b`,
	`(?i)^b\.status\b`,
	`(?i)^as\(c,\b`,
	`(?i)^cc\.fr$`,
	`(?i)^q ltd$`,
	`(?i)^zbar\b`,
	`(?i)^ssssy$`,
	`(?i)^ssss$`,
	`(?i)^as5$`,
	`(?i)^r'b$`,
	`(?i)^\?12$`,
	`(?i)^tj et\b`,
	`(?i)^adobe.*\bairtm\b`,
	`(?i)^adobe.*\bair\x{2122}\b`,
	`(?i)^xerox corporation$`,
	`(?i)^david j\. bradshaw$`,
	`(?i)^gias kay lee$`,
	`(?i)^tim ruffles$`,
	`[\x00-\x1f]`,
	`°°°`,
	`ÿÿÿ`,
	`\x{9a}f`,
	`\x{96}b`,
	`\x{9d}v`,
	`^[A-Z][a-z]$`,
	`^[A-Z][b-z]$`,
	`^[a-z][A-Z]$`,
	`^holder\.\b`,
	`^holder,\b`,
	`^holders,\b`,
	`^holder as\b`,
	`(?i)^applied to\b`,
	`(?i)^designation\b`,
	`(?i)^registered$`,
	`(?i)^component$`,
	`(?i)^count$`,
	`(?i)^group$`,
	`(?i)^isupper$`,
	`(?i)^folded$`,
	`(?i)^dean$`,
	`(?i)^targetpath$`,
	`(?i)^libre-software$`,
	`(?i)^\(2\)\.\s*if\b`,
	`(?i)^\(as found in\b`,
	`(?i)^\(directly copied\b`,
	`(?i)^\(if any\)\b`,
	`(?i)^m\(h`,
	`(?i)^b\(onsisting\b`,
	`(?i)^inria-enpc\b`,
	`(?i)^uossoo\b`,
	`(?i)^ocothd\b`,
	`(?i)^otho\b`,
	`(?i)^iouoi\b`,
	`(?i)^aiuaey\b`,
	`(?i)^aoth\b`,
	`(?i)^ato\b`,
	`(?i)^aaeamooa\b`,
	`(?i)^eeiaeiaaoa\b`,
	`(?i)^exauauuao\b`,
	`(?i)^erxa\d`,
	`(?i)^ijax\b`,
	`(?i)^u1e\b`,
	`(?i)^degu\b`,
	`(?i)^xmlns\b`,
	`(?i)^http://www\.quirksmode\b`,
	`(?i)^\x{201c}adobe\b`,
	`(?i)\bthe resulting\b`,
	`(?i)\ball source code included in\b`,
	`(?i)\bsource code distributed need not\b`,
	`(?i)\bdo not make\b`,
	`(?i)\bgive all recipients\b`,
	`(?i)\brecipients of the\b`,
	`(?i)\bmay be used\b`,
	`(?i)\bthe accompanying\b`,
	`(?i)\bas represented by no\b`,
	`(?i)^compute hessian\b`,
	`(?i)^nat\d+\.is`,
	`(?i)^a\.compatibility\b`,
	`(?i)^opencensus authors \d`,
	`(?i)^retained at the\b`,
	`(?i)^timer code\b`,
	`(?i)^ds status works\b`,
	`(?i)^an sr-iov\b`,
	`(?i)^applies to the regex\b`,
	`(?i)^apple's sf pro\b`,
	`(?i)^xmlns:\?`,
	`(?i)^swfobject\b`,
	`(?i)^program\b.*\btalke studio\b`,
	`(?i)^debian\b.*\bjames troup\b`,
	`(?i)^\$id\$\b`,
	`(?i)^the uc berkeley\b`,
	`(?i)^ococoa\b`,
	`(?i)^grant\. i\b`,
	`(?i)^the gnome libraries\b`,
	`(?i)^as is group\b`,
	`(?i)^match\(ident\)\s*ast\b`,
	`(?i)^holder,? author,? or contributor\b`,
	`(?i)^holders,? authors,? and contributors\b`,
	`(?i)\bportions of\b`,
	`(?i)\bsome parts of\b`,
	`(?i)\bthe source$`,
	`(?i)\bthe source code\b`,
	`(?i)\b\. the source\b`,
	`(?i)^p b i n do$`,
	`(?i)^tue \w+ \d+ \w+ \w+ -`,
	`(?i)^info for$`,
	`(?i)^material,? only\b`,
	`(?i)^(d),? \d`,
	`(?i)^c\. schmidt$`,
	`(?i)^gdb free software\b`,
	`(?i)^va$`,
	`(?i)^wing$`,
	`(?i)^hillion$`,
	`(?i)^(TOUPPER|isascii|iscntrl|isprint|yyunput|ambiguous|TRUE FALSE)$`,
	`(?i)^(width|len|do|date|year|note|update|notive|all the)$`,
	`(?i)^undef\s+\w+$`,
	`(?i)^i\.e\.,\b`,
	`(?i)^endif\b`,
	`(?i)^definedummyword\b`,
	`(?i)^register int\b`,
	`(?i)^l \(unsigned\b`,
	`(?i)^\(\(unsigned\b`,
	`(?i)^notices all\b`,
	`(?i)^may not be removed\b`,
	`(?i)^duplicated in\b`,
	`(?i)^copyright for a\b`,
	`(?i)^copyright info\b`,
	`(?i)^COPYRIGHT HOLDERS AS\b`,
	`(?i)^Mouse Wheel Support\b`,
	`(?i)^Joseph Gil avalable\b`,
	`(?i)^Original code for Bayer\b`,
	`(?i)@remark Read the`,
	`(?i)\bEND END$`,
	`(?i)^inc\.,\s*Id Software\b`,
	`(?i)^Id Software.*Id Software\b`,
	`(?i)\bavalab?le at\b`,
	`(?i)^\(k \d+ k \d+\b`,
	`(?i)^\(unsigned char\)\b`,
	`(?i)^\(int\) TOUPPER\b`,
	`(?i)^(isascii|isdigit|isalpha|isalnum|isupper|islower|isspace|isgraph|ispunct|isxdigit)\b`,
	`(?i)^ungetc\b`,
	`(?i)^yylval\b`,
	`(?i)^symrec\b`,
	`(?i)^arg\s*\+\+`,
	`(?i)^gunichar\b`,
	`(?i)^TRUE FALSE$`,
	`(?i)^undef\b`,
	`(?i)^0 1$`,
	`(?i)^\d{1,2}$`,
	`(?i)^ok-for-header$`,
	`(?i)^date\b.*\bDon't assume\b`,
	`(?i)^notive in the\b`,
	`(?i)\bdon't assume ascii\b`,
	`(?i)^all the$`,
	`(?i)\bftp://\b`,
	`(?i)^CC Computer Consultants\b.*\bContact\b`,
	`(?i)^16 \(\(d\)\b`,
	`(?i)^\(c\) s-$`,
	`(?i)^z \?$`,
	`(?i)^Z \?$`,
	`(?i)^this-\s*setStencil\b`,
	`(?i)^temp\d+$`,
	`(?i)^table\.set\b`,
	`(?i)^strict!?\s*-?\d`,
	`(?i)^slen$`,
	`(?i)^save to iv\b`,
	`(?i)^r,?\s*div\b`,
	`(?i)^r sround\b`,
	`(?i)^r \(s\)$`,
	`(?i)^put chain\b`,
	`(?i)^problem,?\s*work-around\b`,
	`(?i)^prec prec\b`,
	`(?i)^pr this\b`,
	`(?i)^Paul Rusty Russell\b.*\bPlaced\b`,
	`(?i)^Paul Mackerras\b.*\bpipe read\b`,
	`(?i)^packet$`,
	`(?i)^p can be called\b`,
	// ICS false positives: code fragments, boilerplate, gibberish
	`(?i)^the parens part of\b`,
	`(?i)^i\.e\.\s*,?\s*call the\b`,
	`(?i)^8 \(\(b\)\b`,
	`(?i)^\d+ \(trail\b`,
	`(?i)^\d+ illegal\b`,
	`(?i)^strict!\s`,
	`(?i)^\(s\) \(i\)$`,
	`(?i)^0x[0-9a-fA-F]+`,
	`(?i)^\d+ \+0x`,
	`(?i)^\d+ &0x`,
	`(?i)^it a lead surrogate\b`,
	`(?i)^uint\d+$`,
	`(?i)^Construct a set of\b`,
	`(?i)^clause removed\b`,
	`(?i)^0x\d`,
	`(?i)^below\.?\s*(Please)?\b`,
	`(?i)^below$`,
	`(?i)^above$`,
	`(?i)^\(qbuf\b`,
	`(?i)^applies to code\b`,
	`(?i)^0x7f\b`,
	`(?i)^\(with the right granted\b`,
	`(?i)^fi$`,
	`(?i)^as follows$`,
	`(?i)^dst$`,
	`(?i)^dst-\s`,
	`(?i)^< 0 e->`,
	`(?i)^\(\d+ \(pattern\b`,
	`(?i)^ACM and IEEE\b`,
	`(?i)^make it clear$`,
	`(?i)^ifdef$`,
	`(?i)^exploring the\b.*\bcultural\b`,
	`(?i)^do prec\b`,
	`(?i)^EOF &&\b`,
	`(?i)^4\+\(r\)$`,
	`(?i)^c&0x`,
	`(?i)^cp\)$`,
	`(?i)^ctype$`,
	`(?i)^macroptr\b`,
	`(?i)^\(shf\)\b`,
	`(?i)^MAGIC$`,
	`(?i)^out\.ro$`,
	`(?i)^attribution$`,
	`(?i)^\d+ ,\s*l\b.*\b(unsigned|endif)\b`,
	`(?i)^asm bswapl\b`,
	`(?i)^d'\(l\)$`,
	`(?i)^l endif$`,
	`(?i)^03o$`,
	`(?i)^apply$`,
	`(?i)^\(cp\)$`,
	`(?i)^buflen\b.*\bbuf$`,
	`(?i)^buffer\s+[a-z]$`,
	`(?i)^etc\b.*\bstrings\b`,
	`(?i)^1,\s*cls\.\b`,
	`(?i)^this-\s*set\w+\b`,
	`(?i)^\(scale\s+\d\)\s+\d`,
	`(?i)^fWidth$`,
	`(?i)^dst \d$`,
	`(?i)^i \(s\)\b.*\b(while|endif)\b`,
	`(?i)^i ,?\s*div\b`,
	`(?i)^i sround\b`,
	`(?i)^i,?\s*s while\b`,
	`(?i)^r,?\s*div\b`,
	`(?i)^r,?\s*s$`,
	`(?i)^\(a\) \(b\)$`,
	`(?i)^FILE\.*\s+\w+\.\w+\s+AUTHOR\b`,
	`(?i)^Accumulate$`,
	`(?i)^ctable\b`,
	`(?i)^CREDITS PORTING\b`,
	`(?i)^24 endif$`,
	`(?i)^\^ 0x\d`,
	`(?i)^putchar\b.*\bputchar\b`,
	`(?i)^do while$`,
	`(?i)^\^ \(b\)$`,
	`(?i)^help$`,
	`(?i)^in gzlog\.h\b`,
	`(?i)^decoded by\b`,
	`(?i)^IBM Corporation\.$`,
	`(?i)^Lotus Development Corporation\.$`,
	`(?i)^disclaimer$`,
	`(?i)^disclaims all\b`,
	`(?i)^Foundation IBM\b`,
	`(?i)^http://sizzlejs\b`,
	`(?i)^Kasım$`,
	`(?i)^Akim Demaille$`,
	`(?i)^Joel E\. Denny$`,
	`(?i)^num \d$`,
	`(?i)^letters\b.*\bc - A\b`,
	`(?i)^classify$`,
	`(?i)^\(r\) l l$`,
	`(?i)^ok letters\b.*\bcond\b`,
	`(?i)^flags ptbl-\b`,
	`(?i)^holders,?\s*disclaims\b`,
	`(?i)^\d+L$`,
	`(?i)^\d+L,\s*l\b`,
	`(?i)^Chain has\b`,
	`(?i)^DEBUGP\b`,
	`(?i)^Only user$`,
	`(?i)^cindex chains$`,
	`(?i)^foot-\s*target\b`,
	`(?i)^OProfile authors\b.*@remark`,
	`(?i)^and are$`,
	`(?i)^mea-\s*setOffset\b`,
	`(?i)^meta-\s*registerClass\b`,
	`(?i)^EOF &&\s`,
	`(?i)^Bit8u$`,
	`(?i)^cvPoint3D32f$`,
	`(?i)^G2P ADJ\b`,
	`(?i)^info to be inserted\b`,
	`(?i)^0 isupper$`,
	`(?i)^0-9,- \d`,
	`(?i)^97 static$`,
	`(?i)^8 \(\(b\)\s*\d`,
	`(?i)^\d+ \(\(d\)\s*\d`,
	`(?i)^\d+ \(\(a\)\s*\d`,
	`(?i)\b@version \$Id\b`,
	`(?i)^ds Status works\b`,
	`(?i)^holder\.\s*AS\b`,
	`(?i)^oCOOA\b`,
	`(?i)^as\(c,\s*field\b`,
	`(?i)^a!\s*\+-`,
	`(?i)^\(xmlns:\?\s*\^`,
	`(?i)^Tue\s+\w+\s+\d+\s+\w+\s+\w+\s+<`,
	`(?i)\b\d{2}-[A-Z]{3}-\d{2}\s+Bugfixes\b`,
	`(?i)\bpartial mlock\b`,
	`(?i)\bskb\.\s*The buffer\b`,
	`(?i)^IBM Corp\.\s*Auxtrace\b`,
	`(?i)^digÃ`,
	`(?i)^que le prÃ`,
	// Garbled binary data holders (from junk-copyright tests)
	`^AaACEEeUB`,
	`^AaeaMOOAA\d`,
	`^EEIaeIaAAOAE`,
	`^OCOthDTh`,
	`^YY ThQ`,
	`^YY$`,
	`(?i)^NIST\.\d+\.\d+\.`,
	`(?i)AEEEUAU`,
	`(?i)\$\?I\$\?i\$\?I`,
	`^x!C/!O$`,
)

func isJunkHolder(s string) bool {
	return matchesAny(holderJunkPatterns, s)
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
