package face

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required settings that are missing or empty.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not set in .env", strings.Join(e.Missing, " or "))
}

func (e *ConfigurationError) Remediation() string {
	return e.Error() + "\n\n" +
		"Fix:\n" +
		"1. Create a .env file in the working directory (or export the variables).\n" +
		"2. Set AI_SERVICE_ENDPOINT=<your endpoint, e.g. https://your-name.cognitiveservices.azure.com>\n" +
		"3. Set AI_SERVICE_KEY=<Key 1 from the portal>"
}

// AuthorizationError is returned when the service rejects the credentials.
type AuthorizationError struct {
	Provider string
	Status   int
	Message  string
}

func (e *AuthorizationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s returned %d (access denied): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s denied access: %s", e.Provider, e.Message)
}

func (e *AuthorizationError) Remediation() string {
	if e.Provider == ProviderRekognition {
		return e.Error() + "\n\n" +
			"Fix:\n" +
			"1. Check AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY (or your AWS profile).\n" +
			"2. Make sure the identity is allowed to call rekognition:DetectFaces.\n" +
			"3. Check AWS_REGION matches a region where Rekognition is available."
	}
	return "Azure Face API returned 401 (access denied).\n\n" +
		"Fix:\n" +
		"1. In Azure Portal go to your Face resource (create one: AI Services → Face).\n" +
		"2. Open 'Keys and Endpoint' and copy Key 1 and Endpoint.\n" +
		"3. In this folder, edit .env and set:\n" +
		"   AI_SERVICE_ENDPOINT=<your endpoint, e.g. https://your-name.cognitiveservices.azure.com>\n" +
		"   AI_SERVICE_KEY=<Key 1 from portal>\n" +
		"4. Use a Face resource only (Computer Vision keys will not work here)."
}
