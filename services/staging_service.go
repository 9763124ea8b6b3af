package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
)

// InterfaceStagingService 定义本地暂存存储接口
type InterfaceStagingService interface {
	ReadAssetTypes() ([]models.AssetType, bool)
	WriteAssetTypes(assetTypes []models.AssetType) error
	ReadAssets() ([]models.Asset, bool)
	WriteAssets(assets []models.Asset) error
	ReadFloors() ([]models.FloorPlan, bool)
	WriteFloors(floors []models.FloorPlan) error
	ReadResources() ([]models.Resource, bool)
	WriteResources(resources []models.Resource) error

	AppendAsset(asset models.Asset) error
	UpdateAsset(assetID string, updater func(*models.Asset)) error
	RemoveAsset(assetID string) error

	UpdateFloor(floorID string, updater func(*models.FloorPlan)) error
	UpdateFloorItem(floorID, itemID string, updater func(*models.FloorPlanItem)) error
	AppendFloorItem(floorID string, item models.FloorPlanItem) error
	RemoveFloorItem(floorID, itemID string) error

	MutateFloors(mutate func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error)) error
	MutateAssets(mutate func(assets []models.Asset, ok bool) ([]models.Asset, error)) error

	Invalidate(key string)
	FilePath(key string) string
}

// StagingService handles the local file-backed staging storage.
// Each collection key is stored as one JSON file under the staging
// directory. Writers are serialized per key.
type StagingService struct {
	Dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStagingService creates a new staging service
func NewStagingService(cfg *config.Config) InterfaceStagingService {
	return &StagingService{
		Dir:   cfg.StagingDataDir,
		locks: make(map[string]*sync.Mutex),
	}
}

// FilePath returns the backing file for a collection key
func (s *StagingService) FilePath(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// keyLock returns the mutex guarding a collection key
func (s *StagingService) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// readCollection loads a collection file into dest. Returns false when
// the file is missing or unreadable; storage corruption never surfaces
// as an error to callers.
func (s *StagingService) readCollection(key string, dest interface{}) bool {
	data, err := os.ReadFile(s.FilePath(key))
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		config.Warning("暂存文件 %s 内容损坏: %v", key, err)
		return false
	}
	return true
}

// writeCollection replaces the whole collection file for a key,
// creating the staging directory on demand
func (s *StagingService) writeCollection(key string, data interface{}) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		config.Error("创建暂存目录失败: %v", err)
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.FilePath(key), jsonData, 0644); err != nil {
		config.Error("写入暂存文件 %s 失败: %v", key, err)
		return err
	}
	return nil
}

// Invalidate removes the staged copy of a collection so the next
// read-through rebuilds it from the durable store
func (s *StagingService) Invalidate(key string) {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(s.FilePath(key)); err != nil && !os.IsNotExist(err) {
		config.Warning("删除暂存文件 %s 失败: %v", key, err)
	}
}

// ReadAssetTypes reads the staged asset type collection
func (s *StagingService) ReadAssetTypes() ([]models.AssetType, bool) {
	lock := s.keyLock(models.StorageKeyAssetTypes)
	lock.Lock()
	defer lock.Unlock()

	var assetTypes []models.AssetType
	if !s.readCollection(models.StorageKeyAssetTypes, &assetTypes) {
		return nil, false
	}
	return assetTypes, true
}

// WriteAssetTypes replaces the staged asset type collection
func (s *StagingService) WriteAssetTypes(assetTypes []models.AssetType) error {
	lock := s.keyLock(models.StorageKeyAssetTypes)
	lock.Lock()
	defer lock.Unlock()

	return s.writeCollection(models.StorageKeyAssetTypes, assetTypes)
}

// ReadAssets reads the staged asset collection
func (s *StagingService) ReadAssets() ([]models.Asset, bool) {
	lock := s.keyLock(models.StorageKeyAssets)
	lock.Lock()
	defer lock.Unlock()

	var assets []models.Asset
	if !s.readCollection(models.StorageKeyAssets, &assets) {
		return nil, false
	}
	return assets, true
}

// WriteAssets replaces the staged asset collection
func (s *StagingService) WriteAssets(assets []models.Asset) error {
	lock := s.keyLock(models.StorageKeyAssets)
	lock.Lock()
	defer lock.Unlock()

	return s.writeCollection(models.StorageKeyAssets, assets)
}

// ReadFloors reads the staged floor collection
func (s *StagingService) ReadFloors() ([]models.FloorPlan, bool) {
	lock := s.keyLock(models.StorageKeyFloors)
	lock.Lock()
	defer lock.Unlock()

	var floors []models.FloorPlan
	if !s.readCollection(models.StorageKeyFloors, &floors) {
		return nil, false
	}
	return floors, true
}

// WriteFloors replaces the staged floor collection
func (s *StagingService) WriteFloors(floors []models.FloorPlan) error {
	lock := s.keyLock(models.StorageKeyFloors)
	lock.Lock()
	defer lock.Unlock()

	return s.writeCollection(models.StorageKeyFloors, floors)
}

// ReadResources reads the staged resource roster
func (s *StagingService) ReadResources() ([]models.Resource, bool) {
	lock := s.keyLock(models.StorageKeyResources)
	lock.Lock()
	defer lock.Unlock()

	var resources []models.Resource
	if !s.readCollection(models.StorageKeyResources, &resources) {
		return nil, false
	}
	return resources, true
}

// WriteResources replaces the staged resource roster
func (s *StagingService) WriteResources(resources []models.Resource) error {
	lock := s.keyLock(models.StorageKeyResources)
	lock.Lock()
	defer lock.Unlock()

	return s.writeCollection(models.StorageKeyResources, resources)
}

// MutateAssets applies a read-modify-write cycle to the staged asset
// collection under the key lock. ok tells the mutator whether a staged
// copy existed. The mutator may return an error to abort without writing.
func (s *StagingService) MutateAssets(mutate func(assets []models.Asset, ok bool) ([]models.Asset, error)) error {
	lock := s.keyLock(models.StorageKeyAssets)
	lock.Lock()
	defer lock.Unlock()

	var assets []models.Asset
	ok := s.readCollection(models.StorageKeyAssets, &assets)

	result, err := mutate(assets, ok)
	if err != nil {
		return err
	}
	if result == nil {
		// 无变更
		return nil
	}
	return s.writeCollection(models.StorageKeyAssets, result)
}

// MutateFloors applies a read-modify-write cycle to the staged floor
// collection under the key lock, same contract as MutateAssets
func (s *StagingService) MutateFloors(mutate func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error)) error {
	lock := s.keyLock(models.StorageKeyFloors)
	lock.Lock()
	defer lock.Unlock()

	var floors []models.FloorPlan
	ok := s.readCollection(models.StorageKeyFloors, &floors)

	result, err := mutate(floors, ok)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return s.writeCollection(models.StorageKeyFloors, result)
}

// AppendAsset prepends an asset to the staged collection, starting a
// new collection when none is staged yet
func (s *StagingService) AppendAsset(asset models.Asset) error {
	return s.MutateAssets(func(assets []models.Asset, ok bool) ([]models.Asset, error) {
		result := append([]models.Asset{asset}, assets...)
		return result, nil
	})
}

// UpdateAsset applies updater to the matching staged asset; no-op when
// the collection or the asset is absent
func (s *StagingService) UpdateAsset(assetID string, updater func(*models.Asset)) error {
	return s.MutateAssets(func(assets []models.Asset, ok bool) ([]models.Asset, error) {
		if !ok {
			return nil, nil
		}
		for i := range assets {
			if assets[i].ID == assetID {
				updater(&assets[i])
				return assets, nil
			}
		}
		return nil, nil
	})
}

// RemoveAsset filters the matching asset out of the staged collection
func (s *StagingService) RemoveAsset(assetID string) error {
	return s.MutateAssets(func(assets []models.Asset, ok bool) ([]models.Asset, error) {
		if !ok {
			return nil, nil
		}
		filtered := make([]models.Asset, 0, len(assets))
		for i := range assets {
			if assets[i].ID != assetID {
				filtered = append(filtered, assets[i])
			}
		}
		return filtered, nil
	})
}

// UpdateFloor applies updater to the matching staged floor
func (s *StagingService) UpdateFloor(floorID string, updater func(*models.FloorPlan)) error {
	return s.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, nil
		}
		for i := range floors {
			if floors[i].ID == floorID {
				updater(&floors[i])
				return floors, nil
			}
		}
		return nil, nil
	})
}

// UpdateFloorItem applies updater to one item inside a staged floor
func (s *StagingService) UpdateFloorItem(floorID, itemID string, updater func(*models.FloorPlanItem)) error {
	return s.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, nil
		}
		for i := range floors {
			if floors[i].ID != floorID {
				continue
			}
			for j := range floors[i].Items {
				if floors[i].Items[j].ID == itemID {
					updater(&floors[i].Items[j])
					return floors, nil
				}
			}
			return nil, nil
		}
		return nil, nil
	})
}

// AppendFloorItem appends an item to a staged floor's item list
func (s *StagingService) AppendFloorItem(floorID string, item models.FloorPlanItem) error {
	return s.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, nil
		}
		for i := range floors {
			if floors[i].ID == floorID {
				floors[i].Items = append(floors[i].Items, item)
				return floors, nil
			}
		}
		return nil, nil
	})
}

// RemoveFloorItem filters one item out of a staged floor's item list
func (s *StagingService) RemoveFloorItem(floorID, itemID string) error {
	return s.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, nil
		}
		for i := range floors {
			if floors[i].ID != floorID {
				continue
			}
			items := make([]models.FloorPlanItem, 0, len(floors[i].Items))
			for j := range floors[i].Items {
				if floors[i].Items[j].ID != itemID {
					items = append(items, floors[i].Items[j])
				}
			}
			floors[i].Items = items
			return floors, nil
		}
		return nil, nil
	})
}
