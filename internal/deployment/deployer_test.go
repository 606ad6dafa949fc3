package deployment

import "testing"

func TestParseTarget(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantErr    bool
		wantUser   string
		wantHost   string
		wantRemote string
	}{
		{"valid target", "deploy@example.com:/opt/bin", false, "deploy", "example.com", "/opt/bin"},
		{"relative path", "ops@10.0.0.5:apps", false, "ops", "10.0.0.5", "apps"},
		{"missing user", "example.com:/opt/bin", true, "", "", ""},
		{"missing path", "deploy@example.com", true, "", "", ""},
		{"empty path", "deploy@example.com:", true, "", "", ""},
		{"empty target", "", true, "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDeployer(tc.target, "deploy.pem")
			user, host, remote, err := d.parseTarget()

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected an error for target %q", tc.target)
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if user != tc.wantUser || host != tc.wantHost || remote != tc.wantRemote {
				t.Errorf("Expected (%s, %s, %s), got (%s, %s, %s)",
					tc.wantUser, tc.wantHost, tc.wantRemote, user, host, remote)
			}
		})
	}
}

func TestDeployMissingKey(t *testing.T) {
	d := NewDeployer("deploy@example.com:/opt/bin", "no-such-key.pem")
	if err := d.Deploy("no-such-binary"); err == nil {
		t.Error("Expected an error when the key file does not exist")
	}
}
