package models

// ClinicInfo is one clinic information topic used to answer FAQ queries.
type ClinicInfo struct {
	Topic  string `bson:"topic" json:"topic"`
	Answer string `bson:"answer" json:"answer"`
}
