package keys

const (
	// FlagProjectID is a flag representing the project ID of the service account
	FlagProjectID = "project-id"
	// FlagIAMAccount is a flag representing the IAM service account ID
	FlagIAMAccount = "iam-account"
	// FlagKeyID indicates the ID of a single key
	FlagKeyID = "key-id"
	// FlagKeyMaxAge is a flag representing the maximum age of a key, in days
	FlagKeyMaxAge = "key-max-age"
	// FlagKeyType is a flag representing the type of private key to create
	FlagKeyType = "key-type"
	// FlagKeyAlgorithm is a flag representing the algorithm of the key to create
	FlagKeyAlgorithm = "key-algorithm"
	// FlagOutputFile is a flag representing the file the new private key is written to
	FlagOutputFile = "output-file"
	// FlagOutput is a flag selecting the list output format
	FlagOutput = "output"
	// FlagDryRun indicates that cleanup only reports what it would delete
	FlagDryRun = "dry-run"
)

const (
	projectIDDescription  = "The project ID of the service account"
	iamAccountDescription = "The IAM service account ID"
)
