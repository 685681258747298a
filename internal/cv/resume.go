package cv

type (
	// GeneralEditor edits the general section.
	GeneralEditor = Editor[GeneralField, General]
	// AcademicList holds the academic background entries.
	AcademicList = List[AcademicField, Academic]
	// ProfessionalList holds the professional experience entries.
	ProfessionalList = List[ProfessionalField, Professional]
)

// Resume groups the three sections of one editing session. The sections are
// independent; nothing here coordinates them.
type Resume struct {
	General      *GeneralEditor
	Academic     *AcademicList
	Professional *ProfessionalList
}

// NewResume creates an empty résumé whose list sections draw UIDs from ids.
func NewResume(ids IDGenerator) *Resume {
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &Resume{
		General:      NewEditor[GeneralField](General{}),
		Academic:     NewList[AcademicField, Academic](ids),
		Professional: NewList[ProfessionalField, Professional](ids),
	}
}

// Snapshot is a read-only copy of the committed content of a Resume.
// Drafts that were never submitted are not part of it.
type Snapshot struct {
	General      General        `yaml:"general"`
	Academic     []Academic     `yaml:"academic"`
	Professional []Professional `yaml:"professional"`
}

// Snapshot copies the current committed state.
func (r *Resume) Snapshot() Snapshot {
	return Snapshot{
		General:      r.General.Record(),
		Academic:     r.Academic.Values(),
		Professional: r.Professional.Values(),
	}
}

// Empty reports whether the snapshot has no content at all.
func (s Snapshot) Empty() bool {
	return s.General == (General{}) && len(s.Academic) == 0 && len(s.Professional) == 0
}

// Seed fills r with the given content by replaying the controller
// operations, so seeded entries go through the same transitions as typed
// ones.
func (r *Resume) Seed(s Snapshot) {
	r.General.ToggleEdit()
	for _, f := range s.General.Fields() {
		r.General.Change(f, s.General.Get(f))
	}
	r.General.Submit()

	for _, a := range s.Academic {
		seedItem(r.Academic, a)
	}
	for _, p := range s.Professional {
		seedItem(r.Professional, p)
	}
}

func seedItem[F Field, T Record[F, T]](l *List[F, T], rec T) {
	uid := l.Add()
	l.Select(uid)
	for _, f := range rec.Fields() {
		l.ChangeDraft(f, rec.Get(f))
	}
	l.Submit(uid)
}

// SampleSnapshot is the example résumé printed by "civi sample" and loaded
// with "civi --sample".
func SampleSnapshot() Snapshot {
	return Snapshot{
		General: General{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "+44 20 7946 0000",
		},
		Academic: []Academic{
			{School: "University of London", Title: "Mathematics", Year: "1840"},
		},
		Professional: []Professional{
			{
				Company:  "Analytical Engine Project",
				Title:    "Analyst",
				Role:     "Wrote the first published algorithm for a machine",
				DateFrom: "1842",
				DateTo:   "1843",
			},
		},
	}
}
