package equiv

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// bucketIndex groups cell names by fingerprint digest. Whenever a digest
// gains its second insertion it is appended, once, to the phase queue it
// triggered in. Cells inserted after the trigger still join the bucket, so
// a queued digest is always resolved against full membership.
type bucketIndex struct {
	members map[string]mapset.Set[string]

	fwdQueue []string
	bwdQueue []string
	fwdSeen  mapset.Set[string]
	bwdSeen  mapset.Set[string]
}

func newBucketIndex() *bucketIndex {
	return &bucketIndex{
		members: make(map[string]mapset.Set[string]),
		fwdSeen: mapset.NewSet[string](),
		bwdSeen: mapset.NewSet[string](),
	}
}

// add inserts cell into the digest's bucket, queueing the digest for the
// backward or forward phase when the bucket was already occupied.
func (bi *bucketIndex) add(digest, cell string, backward bool) {
	set, ok := bi.members[digest]
	if !ok {
		set = mapset.NewSet[string]()
		bi.members[digest] = set
	} else if set.Cardinality() > 0 {
		if backward {
			if bi.bwdSeen.Add(digest) {
				bi.bwdQueue = append(bi.bwdQueue, digest)
			}
		} else {
			if bi.fwdSeen.Add(digest) {
				bi.fwdQueue = append(bi.fwdQueue, digest)
			}
		}
	}
	set.Add(cell)
}

// bucket returns the member set recorded under digest.
func (bi *bucketIndex) bucket(digest string) mapset.Set[string] {
	return bi.members[digest]
}
