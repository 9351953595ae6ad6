// Package keywords provides keyword normalization, synonym expansion, and
// rule-based keyword extraction for ATS matching.
package keywords

// techSynonyms maps a normalized term to its known aliases. The table is
// pre-flattened: every entry lists the aliases reachable from that term, and
// variantSets (built at init) closes the lookup in both directions so that an
// alias resolves to its canonical group and vice versa.
var techSynonyms = map[string][]string{
	"react":                       {"reactjs", "react.js", "react js"},
	"reactjs":                     {"react", "react.js", "react js"},
	"node":                        {"nodejs", "node.js", "node js"},
	"nodejs":                      {"node", "node.js", "node js"},
	"javascript":                  {"js", "es6", "es2015", "ecmascript"},
	"js":                          {"javascript", "es6"},
	"typescript":                  {"ts"},
	"ts":                          {"typescript"},
	"python":                      {"py", "python3"},
	"py":                          {"python"},
	"golang":                      {"go"},
	"mongodb":                     {"mongo", "mongo db"},
	"mongo":                       {"mongodb"},
	"postgresql":                  {"postgres", "psql", "pg"},
	"postgres":                    {"postgresql", "psql"},
	"mysql":                       {"my sql"},
	"amazon web services":         {"aws"},
	"aws":                         {"amazon web services", "amazon"},
	"google cloud":                {"gcp", "google cloud platform"},
	"gcp":                         {"google cloud", "google cloud platform"},
	"microsoft azure":             {"azure"},
	"azure":                       {"microsoft azure"},
	"docker":                      {"containerization", "containers"},
	"kubernetes":                  {"k8s"},
	"k8s":                         {"kubernetes"},
	"machine learning":            {"ml", "deep learning", "ai"},
	"ml":                          {"machine learning"},
	"artificial intelligence":     {"ai", "machine learning"},
	"ai":                          {"artificial intelligence", "machine learning"},
	"natural language processing": {"nlp"},
	"nlp":                         {"natural language processing"},
	"ci/cd":                       {"cicd", "continuous integration", "continuous deployment"},
	"rest":                        {"restful", "rest api", "restful api"},
	"restful":                     {"rest", "rest api"},
	"api":                         {"apis", "rest api", "web api"},
	"html":                        {"html5"},
	"html5":                       {"html"},
	"css":                         {"css3", "scss", "sass"},
	"css3":                        {"css"},
	"sql":                         {"structured query language"},
	"nosql":                       {"no sql", "non relational"},
	"git":                         {"github", "gitlab", "version control"},
	"github":                      {"git"},
	"gitlab":                      {"git"},
	"agile":                       {"scrum", "kanban"},
	"scrum":                       {"agile"},
	"express":                     {"expressjs", "express.js"},
	"expressjs":                   {"express", "express.js"},
	"django":                      {"django rest framework", "drf"},
	"flask":                       {"flask api"},
	"fastapi":                     {"fast api"},
	"vue":                         {"vuejs", "vue.js"},
	"vuejs":                       {"vue", "vue.js"},
	"angular":                     {"angularjs", "angular.js"},
	"angularjs":                   {"angular"},
	"next":                        {"nextjs", "next.js"},
	"nextjs":                      {"next", "next.js"},
	"tailwind":                    {"tailwindcss", "tailwind css"},
	"tailwindcss":                 {"tailwind"},
	"bootstrap":                   {"twitter bootstrap"},
	"redis":                       {"redis cache"},
	"elasticsearch":               {"elastic search", "elastic"},
	"graphql":                     {"graph ql"},
	"tensorflow":                  {"tf"},
	"pytorch":                     {"torch"},
	"pandas":                      {"pd"},
	"numpy":                       {"np"},
	"opencv":                      {"cv2", "open cv"},
	"linux":                       {"unix", "ubuntu", "debian", "centos"},
	"c++":                         {"cpp", "cplusplus"},
	"cpp":                         {"c++"},
	"c#":                          {"csharp", "c sharp"},
	"csharp":                      {"c#"},
	".net":                        {"dotnet", "dot net"},
	"dotnet":                      {".net"},
}

// variantSets maps each normalized term appearing anywhere in techSynonyms to
// its full bidirectional variant set. Built once at init and read-only after.
var variantSets map[string]map[string]bool

func init() {
	variantSets = make(map[string]map[string]bool, len(techSynonyms)*2)

	addVariant := func(term, variant string) {
		set, ok := variantSets[term]
		if !ok {
			set = make(map[string]bool)
			variantSets[term] = set
		}
		set[variant] = true
	}

	for base, syns := range techSynonyms {
		baseNorm := Normalize(base)
		addVariant(baseNorm, baseNorm)
		for _, syn := range syns {
			synNorm := Normalize(syn)
			// canonical -> alias
			addVariant(baseNorm, synNorm)
			// alias -> canonical plus every sibling alias
			addVariant(synNorm, synNorm)
			addVariant(synNorm, baseNorm)
			for _, sibling := range syns {
				addVariant(synNorm, Normalize(sibling))
			}
		}
	}
}
