package pack

import (
	_ "crypto/sha256" // digest.SHA256
	_ "crypto/sha512" // digest.SHA512
	"strings"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/modpack/internal/core/domain"
)

// checkable lists the catalog hash algorithms a file in place can be compared
// against, strongest first.
var checkable = []digest.Algorithm{digest.SHA512, digest.SHA256}

// fileDigest returns the strongest well-formed digest the catalog advertises
// for file.
func fileDigest(file domain.FileDescriptor) (digest.Digest, bool) {
	for _, alg := range checkable {
		encoded, ok := file.Hashes[alg.String()]
		if !ok {
			continue
		}
		d := digest.NewDigestFromEncoded(alg, strings.ToLower(encoded))
		if d.Validate() == nil {
			return d, true
		}
	}
	return "", false
}
