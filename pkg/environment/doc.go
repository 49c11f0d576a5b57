// Package environment names the deployment environment the server runs in.
//
// Parse accepts the usual short aliases ("dev", "stage", "prod") and falls
// back to Development for empty or unknown values:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//		// enable HSTS
//	}
package environment
