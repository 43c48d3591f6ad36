package service

// SendWeeklyDigest emails a health summary to every profile with an email
// address. Per-user failures are logged and skipped so one bad mailbox
// never blocks the rest of the run.
func (s *Service) SendWeeklyDigest() {
	profiles, err := s.store.ListProfiles()
	if err != nil {
		s.log.Errorf("Digest run aborted, failed to list profiles: %v", err)
		return
	}

	keyRate, err := s.rates.GetKeyRate()
	if err != nil {
		s.log.Warnf("Key rate unavailable for digest: %v", err)
		keyRate = 0
	}

	sent := 0
	for _, p := range profiles {
		if p.Email == "" {
			continue
		}
		snapshot, err := s.BuildSnapshot(p.Username)
		if err != nil {
			s.log.Errorf("Digest skipped for user %s: %v", p.Username, err)
			continue
		}
		if err := s.mailer.SendHealthDigest(p.Email, p.Username, snapshot.Health, keyRate); err != nil {
			s.log.Errorf("Digest email failed for user %s: %v", p.Username, err)
			continue
		}
		sent++
	}
	s.log.Infof("Weekly digest run complete: %d of %d profiles emailed", sent, len(profiles))
}
