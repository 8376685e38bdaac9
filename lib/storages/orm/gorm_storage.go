package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	projects  *model.Projects
	tickets   *model.Tickets
	documents *model.Documents
	contacts  *model.Contacts
	config    *map[string]string

	sqlConfigs   map[string]*sqlConfig
	sqlProjs     map[string]*sqlProject
	sqlTickets   map[string]*sqlTicket
	sqlDocuments map[string]*sqlDocument
	sqlContacts  map[string]*sqlContact
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlProject{},
		&sqlTicket{},
		&sqlDocument{},
		&sqlContact{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadProjects() (*model.Projects, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.projects != nil {
		return s.projects, nil
	}

	s.console.Printf("Loading projects...\n")

	result := model.NewProjects()

	var projs []*sqlProject
	err := s.db.Find(&projs).Error
	if err != nil {
		return nil, err
	}

	s.sqlProjs = createCache(projs)

	for _, sp := range projs {
		p := result.GetOrCreateEx(sp.Name, &sp.ID)
		p.Status = sp.Status
		p.Staging = sp.Staging
		p.Priority = sp.Priority
		p.Effort = sp.Effort
		p.Impact = sp.Impact
		p.Owner = sp.Owner
		p.Team = sp.Team
		p.Summary = sp.Summary
		p.Data = decodeMap(sp.Data)
		p.FirstSeen = sp.FirstSeen
		p.LastSeen = sp.LastSeen
		p.Ignore = sp.Ignore
	}

	s.projects = result
	return result, nil
}

func (s *gormStorage) WriteProjects() error {
	if s.projects == nil {
		return nil
	}

	return s.writeProjects(s.projects.List())
}

func (s *gormStorage) WriteProject(proj *model.Project) error {
	if s.projects == nil {
		return errors.New("projects not loaded")
	}

	return s.writeProjects([]*model.Project{proj})
}

func (s *gormStorage) writeProjects(projs []*model.Project) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlProjs := prepareChanges(projs, newSqlProject, &s.sqlProjs)

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlProjs).Error
	if err != nil {
		return err
	}

	addList(&s.sqlProjs, sqlProjs)

	// TODO delete

	return nil
}

func (s *gormStorage) LoadTickets() (*model.Tickets, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.tickets != nil {
		return s.tickets, nil
	}

	s.console.Printf("Loading tickets...\n")

	result := model.NewTickets()

	var tickets []*sqlTicket
	err := s.db.Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	s.sqlTickets = createCache(tickets)

	for _, st := range tickets {
		t := result.GetOrCreateEx(st.Reference, &st.ID)
		t.Title = st.Title
		t.Status = st.Status
		t.AssignedTo = st.AssignedTo
		t.ClosedBy = st.ClosedBy
		t.CreatedAt = st.Created
		t.ClosedAt = st.Closed
		for _, l := range st.Labels {
			t.AddLabel(l)
		}
		t.Data = decodeMap(st.Data)
	}

	s.tickets = result
	return result, nil
}

func (s *gormStorage) WriteTickets() error {
	if s.tickets == nil {
		return nil
	}

	return s.writeTickets(s.tickets.List())
}

func (s *gormStorage) WriteTicket(ticket *model.Ticket) error {
	if s.tickets == nil {
		return errors.New("tickets not loaded")
	}

	return s.writeTickets([]*model.Ticket{ticket})
}

func (s *gormStorage) writeTickets(tickets []*model.Ticket) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlTickets := prepareChanges(tickets, newSqlTicket, &s.sqlTickets)

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlTickets).Error
	if err != nil {
		return err
	}

	addList(&s.sqlTickets, sqlTickets)

	// TODO delete

	return nil
}

func (s *gormStorage) LoadDocuments() (*model.Documents, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.documents != nil {
		return s.documents, nil
	}

	s.console.Printf("Loading documents...\n")

	result := model.NewDocuments()

	var docs []*sqlDocument
	err := s.db.Find(&docs).Error
	if err != nil {
		return nil, err
	}

	s.sqlDocuments = createCache(docs)

	for _, sd := range docs {
		d := result.GetOrCreateEx(sd.Title, &sd.ID)
		d.Category = sd.Category
		d.Owner = sd.Owner
		d.Link = sd.Link
		d.Data = decodeMap(sd.Data)
		d.FirstSeen = sd.FirstSeen
		d.LastSeen = sd.LastSeen
	}

	s.documents = result
	return result, nil
}

func (s *gormStorage) WriteDocuments() error {
	if s.documents == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlDocs := prepareChanges(s.documents.List(), newSqlDocument, &s.sqlDocuments)

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlDocs).Error
	if err != nil {
		return err
	}

	addList(&s.sqlDocuments, sqlDocs)

	// TODO delete

	return nil
}

func (s *gormStorage) LoadContacts() (*model.Contacts, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.contacts != nil {
		return s.contacts, nil
	}

	s.console.Printf("Loading contacts...\n")

	result := model.NewContacts()

	var contacts []*sqlContact
	err := s.db.Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	s.sqlContacts = createCache(contacts)

	for _, sc := range contacts {
		c := result.GetOrCreateEx(sc.Name, &sc.ID)
		c.Role = sc.Role
		c.Team = sc.Team
		c.Email = sc.Email
		c.Data = decodeMap(sc.Data)
		c.FirstSeen = sc.FirstSeen
		c.LastSeen = sc.LastSeen
	}

	s.contacts = result
	return result, nil
}

func (s *gormStorage) WriteContacts() error {
	if s.contacts == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlContacts := prepareChanges(s.contacts.List(), newSqlContact, &s.sqlContacts)

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlContacts).Error
	if err != nil {
		return err
	}

	addList(&s.sqlContacts, sqlContacts)

	// TODO delete

	return nil
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.config != nil {
		return s.config, nil
	}

	s.console.Printf("Loading config...\n")

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
	if err != nil {
		return err
	}

	addList(&s.sqlConfigs, sqlConfigs)

	return nil
}

func addList[T sqlTable](target *map[string]T, toAdd []T) {
	for _, v := range toAdd {
		(*target)[v.CacheKey()] = v
	}
}

func prepareChanges[S sqlTable, M any](models []M, toSql func(M) S, cache *map[string]S) []S {
	var result []S
	for _, m := range models {
		s := toSql(m)
		if prepareChange(cache, s) {
			result = append(result, s)
		}
	}
	return result
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}
