package model

// ApplicantEmailKey is the AppliedCollection key that identifies the applicant.
const ApplicantEmailKey = "email"
