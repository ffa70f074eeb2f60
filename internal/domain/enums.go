package domain

// FileType represents the allowed document types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole is the role a visitor picks on the welcome screen.
type UserRole string

const (
	RoleNone    UserRole = ""
	RoleStudent UserRole = "student"
	RoleDonor   UserRole = "donor"
)

// Valid reports whether r is a selectable role.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleDonor
}

// GenderPref is a donor's gender preference.
type GenderPref string

const (
	GenderAny    GenderPref = "Any"
	GenderFemale GenderPref = "Female"
	GenderMale   GenderPref = "Male"
)

// Family background options offered to donors.
const (
	FamilyBgAny          = "Any"
	FamilyBgVeryPoor     = "Very Poor"
	FamilyBgSingleParent = "Single Parent"
	FamilyBgOrphan       = "Orphan"
)

// Study level options offered to donors.
const (
	StudyLevelAny          = "Any"
	StudyLevelSchool       = "School"
	StudyLevelIntermediate = "Intermediate"
	StudyLevelDegree       = "Degree"
	StudyLevelEngineering  = "Engineering"
)

// FamilyBackgrounds lists the accepted family background preferences.
var FamilyBackgrounds = []string{FamilyBgAny, FamilyBgVeryPoor, FamilyBgSingleParent, FamilyBgOrphan}

// StudyLevels lists the accepted study level preferences.
var StudyLevels = []string{StudyLevelAny, StudyLevelSchool, StudyLevelIntermediate, StudyLevelDegree, StudyLevelEngineering}

// DocumentTypeMarksMemo is the only document type students upload today.
const DocumentTypeMarksMemo = "Marks Memo"

// Defaults applied to newly registered students.
const (
	DefaultStudentCategory = "General"
	DefaultStudentAge      = 20
	DefaultStudentPhotoURL = "https://picsum.photos/200/200"
)
