package jams

// Version is the schema version stamped on new objects.
const Version = "0.3.4"

// JAMS is the top-level annotation object.
type JAMS struct {
	Annotations  []*Annotation `json:"annotations"`
	FileMetadata FileMetadata  `json:"file_metadata"`
	Sandbox      Sandbox       `json:"sandbox"`
}

// New returns an empty JAMS object with an initialised sandbox.
func New() *JAMS {
	return &JAMS{
		Annotations: []*Annotation{},
		FileMetadata: FileMetadata{
			Identifiers: Sandbox{},
			JamsVersion: Version,
		},
		Sandbox: Sandbox{},
	}
}

// FileMetadata describes the audio file the annotations belong to.
type FileMetadata struct {
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Release     string   `json:"release"`
	Duration    *float64 `json:"duration"`
	Identifiers Sandbox  `json:"identifiers"`
	JamsVersion string   `json:"jams_version"`
}

// Annotation is one namespace-tagged list of observations.
type Annotation struct {
	Namespace          string             `json:"namespace"`
	Data               []Observation      `json:"data"`
	AnnotationMetadata AnnotationMetadata `json:"annotation_metadata"`
	Sandbox            Sandbox            `json:"sandbox"`
	Time               *float64           `json:"time"`
	Duration           *float64           `json:"duration"`
}

// Observation is a single timed value within an annotation.
type Observation struct {
	Time       float64 `json:"time"`
	Duration   float64 `json:"duration"`
	Value      any     `json:"value"`
	Confidence any     `json:"confidence"`
}

// AnnotationMetadata records provenance of an annotation.
type AnnotationMetadata struct {
	Curator         Curator `json:"curator"`
	Annotator       Sandbox `json:"annotator"`
	Version         string  `json:"version"`
	Corpus          string  `json:"corpus"`
	AnnotationTools string  `json:"annotation_tools"`
	AnnotationRules string  `json:"annotation_rules"`
	Validation      string  `json:"validation"`
	DataSource      string  `json:"data_source"`
}

// Curator identifies who is responsible for an annotation.
type Curator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Search returns the annotations whose namespace equals ns.
func (j *JAMS) Search(ns string) []*Annotation {
	var out []*Annotation
	for _, a := range j.Annotations {
		if a != nil && a.Namespace == ns {
			out = append(out, a)
		}
	}
	return out
}
