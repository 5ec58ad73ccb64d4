package constvars

const (
	// DD-MM-YYYY, as the registration form collects it.
	RegexDateOfBirth = `^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`
	// National number without the leading zero; the dialing prefix is sent separately.
	RegexMobileNumber = `^[1-9][0-9]{5,11}$`
)
