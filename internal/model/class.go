package model

// Class is the transparency classification of a single PNG file
type Class string

const (
	// ClassTransparent means the image has at least one non-opaque pixel
	// or carries explicit transparency metadata
	ClassTransparent Class = "transparent"

	// ClassOpaque means every pixel is fully opaque
	ClassOpaque Class = "opaque"
)

// Default output directory names
const (
	DefaultTransparentDir = "transparent"
	DefaultOpaqueDir      = "opaque"
)

// String returns the string representation of Class
func (c Class) String() string {
	return string(c)
}

// DirName returns the default output directory name for the class
func (c Class) DirName() string {
	if c == ClassTransparent {
		return DefaultTransparentDir
	}
	return DefaultOpaqueDir
}

// ClassOf maps the detector verdict to a Class
func ClassOf(transparent bool) Class {
	if transparent {
		return ClassTransparent
	}
	return ClassOpaque
}
